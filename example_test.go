/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates_test

import (
	"fmt"

	"github.com/suparena/pathtemplates"
)

func Example() {
	files := pathtemplates.New()
	files.Add("subjects", "/data/subjects_dir")
	files.Add("epochs", "{subjects}/sub{subject:03d}/{cond}-epo.fif")

	p, _ := files.Resolve("epochs", pathtemplates.Args{"subject": 1, "cond": "face"})
	fmt.Println(p)
	// Output: /data/subjects_dir/sub001/face-epo.fif
}

func ExampleRegistry_Get() {
	files := pathtemplates.New()
	files.Add("subjects", "/data/subjects_dir")
	files.Add("fsaverage", "{subjects}/fsaverage-src.fif")

	// Every placeholder is filled from a sibling alias, so no arguments
	// are needed.
	p, _ := files.Get("fsaverage")
	fmt.Println(p)
	// Output: /data/subjects_dir/fsaverage-src.fif
}

func ExampleRegistry_AddFromMap() {
	files := pathtemplates.New()
	files.AddFromMap(map[string]any{
		"subjects":  "/data/subjects_dir",
		"fsaverage": "{subjects}/fsaverage-src.fif",
	})

	fmt.Println(files.MustGet("fsaverage"))
	// Output: /data/subjects_dir/fsaverage-src.fif
}

func ExamplePathFunc() {
	files := pathtemplates.New()
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

	p, _ := files.Resolve("complicated", pathtemplates.Args{"subject": 1})
	fmt.Println(p)
	// Output: /data/subjects_dir/103hdsolli.fif
}

func ExamplePath_Join() {
	files := pathtemplates.New()
	files.Add("subjects", "/data/subjects_dir")

	p, _ := files.Get("subjects")
	fmt.Println(p.(pathtemplates.Path).Join("sub001", "face-epo.fif"))
	// Output: /data/subjects_dir/sub001/face-epo.fif
}
