/*
Package loader registers path aliases from YAML documents.

The core registry deliberately knows nothing about configuration formats;
this package is the collaborator that bridges the two. A document is a flat
mapping from alias name to path or template:

	subjects: /data/subjects_dir
	fsaverage: "{subjects}/fsaverage-src.fif"
	epochs: "{subjects}/sub{subject:03d}/{cond}-epo.fif"

Entries are registered in document order, so the partial state after a
failed load is predictable. Path functions cannot be expressed in YAML;
register those in code with Registry.Add.

Usage:

	files := pathtemplates.New()
	if err := loader.LoadFile("paths.yaml", files); err != nil {
	    return err
	}
	p, err := files.Resolve("epochs", pathtemplates.Args{"subject": 1, "cond": "face"})
*/
package loader
