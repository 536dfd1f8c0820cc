/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates

import (
	"github.com/suparena/pathtemplates/errors"
)

// binding is one registered alias. The three variants are a literal path, a
// template with placeholders, and a user-supplied path function; each knows
// how to resolve itself. The stack carries the chain of in-progress alias
// names for cycle detection, with the binding's own alias last.
type binding interface {
	resolve(r *Registry, args Args, stack []string) (PathValue, error)
}

// literalBinding is a path with no placeholders, returned as registered.
type literalBinding string

func (b literalBinding) resolve(r *Registry, _ Args, _ []string) (PathValue, error) {
	return r.wrap(string(b)), nil
}

// templateBinding is a format string with placeholders, substituted on every
// resolution. The raw template is kept as registered; parsing happens at
// resolve time.
type templateBinding string

func (b templateBinding) resolve(r *Registry, args Args, stack []string) (PathValue, error) {
	out, err := r.substitute(string(b), args, stack)
	if err != nil {
		return nil, err
	}
	return r.wrap(out), nil
}

// funcBinding computes its path through a user-supplied function. The result
// is passed through unchanged; a returned error is wrapped as a callable
// failure.
type funcBinding PathFunc

func (b funcBinding) resolve(r *Registry, args Args, stack []string) (PathValue, error) {
	v, err := b(r, args)
	if err != nil {
		return nil, errors.NewCallableError(stack[len(stack)-1], err)
	}
	return v, nil
}
