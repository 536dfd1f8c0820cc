/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/suparena/pathtemplates/errors"
)

// aliasPattern matches a valid alias name: aliases cannot start with an
// underscore or a number.
var aliasPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Registry maps alias names to path bindings and resolves them on demand.
// Registration order is irrelevant for resolution but is preserved for
// Names and error messages. A Registry is not synchronized; callers sharing
// one across goroutines must provide their own locking.
type Registry struct {
	plain    bool
	bindings map[string]binding
	order    []string
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithPlainStrings makes the registry return Plain string values instead of
// structured Path values.
func WithPlainStrings() Option {
	return func(r *Registry) {
		r.plain = true
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		bindings: make(map[string]binding),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a path under the given alias, overwriting any previous
// binding with the same name. The value is either a string (a literal path,
// or a template when it contains {placeholder} syntax), a Path, or a
// PathFunc. Templates are not validated here: a malformed or circular
// template only surfaces when the alias is resolved.
func (r *Registry) Add(name string, value any) error {
	if !aliasPattern.MatchString(name) {
		return errors.NewInvalidAliasError(name, "aliases must start with a letter, followed by letters, digits or underscores")
	}

	var b binding
	switch v := value.(type) {
	case string:
		if containsPlaceholder(v) {
			b = templateBinding(v)
		} else {
			b = literalBinding(v)
		}
	case Path:
		b = literalBinding(v)
	case Plain:
		b = literalBinding(v)
	case PathFunc:
		b = funcBinding(v)
	case func(*Registry, Args) (PathValue, error):
		b = funcBinding(v)
	default:
		return errors.NewInvalidAliasError(name, fmt.Sprintf("unsupported binding type %T", value))
	}

	if _, exists := r.bindings[name]; !exists {
		r.order = append(r.order, name)
	}
	r.bindings[name] = b
	return nil
}

// AddFromMap registers every entry of an {alias: path} map. Entries are
// added in sorted name order so partial failures are deterministic; there is
// no rollback, a failure partway through leaves the prior entries
// registered. Use the loader package to add entries in document order from
// YAML.
func (r *Registry) AddFromMap(m map[string]any) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Add(name, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// Get resolves an alias with no arguments. It succeeds for literal paths,
// for templates whose every placeholder is filled by a sibling alias, and
// for path functions that accept empty arguments; otherwise the error says
// which placeholders need to be supplied through Resolve.
func (r *Registry) Get(name string) (PathValue, error) {
	return r.resolve(name, nil, nil)
}

// Resolve resolves an alias with the given arguments. Argument values take
// precedence over same-named sibling aliases.
func (r *Registry) Resolve(name string, args Args) (PathValue, error) {
	return r.resolve(name, args, nil)
}

// MustGet is like Get but panics on error. Intended for scripts where a
// missing path is fatal anyway.
func (r *Registry) MustGet(name string) PathValue {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustResolve is like Resolve but panics on error.
func (r *Registry) MustResolve(name string, args Args) PathValue {
	v, err := r.Resolve(name, args)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether an alias is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.bindings[name]
	return ok
}

// Names returns the registered aliases in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// resolve looks up and resolves one alias. The stack holds the chain of
// in-progress alias names; finding the name already on it means the
// templates reference each other in a cycle.
func (r *Registry) resolve(name string, args Args, stack []string) (PathValue, error) {
	b, ok := r.bindings[name]
	if !ok {
		return nil, errors.NewUnknownAliasError(name, r.Names())
	}

	for _, inProgress := range stack {
		if inProgress == name {
			chain := make([]string, 0, len(stack)+1)
			chain = append(chain, stack...)
			chain = append(chain, name)
			return nil, errors.NewCycleError(chain)
		}
	}

	return b.resolve(r, args, append(stack, name))
}

// wrap converts a substituted string into the registry's result form.
func (r *Registry) wrap(s string) PathValue {
	if r.plain {
		return Plain(s)
	}
	return Path(s)
}
