/*
Package pathtemplates manages named, templated file paths for data-processing
scripts, offering a small in-memory registry that turns short aliases into
concrete paths.

Use Add to register an alias for a path. The alias can later be used to
retrieve the full path:

	files := pathtemplates.New()
	files.Add("my_file", "/path/to/file1")
	p, _ := files.Get("my_file")
	// p.String(): "/path/to/file1"

Paths can also be templates that generate paths for different subjects,
conditions, and so on. Placeholders follow fmt conventions, so numeric
padding and the like work as expected:

	files.Add("epochs", "/data/sub{subject:03d}/{cond}-epo.fif")
	p, _ := files.Resolve("epochs", pathtemplates.Args{"subject": 1, "cond": "face"})
	// p.String(): "/data/sub001/face-epo.fif"

If a placeholder happens to be the alias of a path that was registered
earlier, the placeholder is filled in automatically by resolving that alias:

	files.Add("subjects", "/data/subjects_dir")
	files.Add("fsaverage", "{subjects}/fsaverage-src.fif")
	p, _ := files.Get("fsaverage")
	// p.String(): "/data/subjects_dir/fsaverage-src.fif"

Resolved paths are returned as Path values, which carry a few structured
helpers (Dir, Base, Ext, Join). If you want ordinary strings instead, pass
WithPlainStrings when constructing the registry:

	files := pathtemplates.New(pathtemplates.WithPlainStrings())

If computing a path gets more complicated than templates allow, register a
PathFunc. It is invoked with the registry as its first parameter, followed
by the arguments supplied along with the request:

	files.Add("basedir", "/data/subjects_dir")
	files.Add("complicated", pathtemplates.PathFunc(
	    func(files *pathtemplates.Registry, args pathtemplates.Args) (pathtemplates.PathValue, error) {
	        base, err := files.Get("basedir")
	        if err != nil {
	            return nil, err
	        }
	        if args["subject"] == 1 {
	            return base.(pathtemplates.Path).Join("103hdsolli.fif"), nil
	        }
	        return base.(pathtemplates.Path).Join(fmt.Sprintf("%v.fif", args["subject"])), nil
	    }))

Instead of adding one alias at a time, AddFromMap registers a whole map of
them, and the loader subpackage does the same from a YAML document.

Resolution is lazy and recomputed on every call: nothing is validated at
registration time, nothing is cached, and no file I/O is performed. The
registry itself is not synchronized; callers sharing one across goroutines
must provide their own locking.
*/
package pathtemplates
