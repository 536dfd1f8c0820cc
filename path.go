/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates

import "path/filepath"

// PathValue is the result of resolving an alias: either a structured Path
// or a Plain string, depending on how the Registry was constructed.
type PathValue interface {
	String() string

	pathValue()
}

// Path is a resolved path with structured helpers.
type Path string

func (p Path) pathValue() {}

func (p Path) String() string {
	return string(p)
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Ext returns the file name extension of the path, including the dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// Join appends elements to the path, inserting separators as needed.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Plain is a resolved path kept as an ordinary string. Registries built with
// WithPlainStrings return Plain values instead of Path values.
type Plain string

func (p Plain) pathValue() {}

func (p Plain) String() string {
	return string(p)
}

// Args holds the keyword arguments of a resolution request, keyed by
// placeholder name.
type Args map[string]any

// PathFunc computes a path that is too complicated for a template. It
// receives the owning Registry as its first parameter, followed by the
// arguments supplied along with the request. Whatever it returns is passed
// through to the caller unchanged.
type PathFunc func(files *Registry, args Args) (PathValue, error)
