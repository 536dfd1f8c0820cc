/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrUnknownAlias is returned when a name was never registered
	ErrUnknownAlias = errors.New("unknown alias")

	// ErrUndefinedPlaceholder is returned when a template references a name
	// that is resolvable neither from arguments nor from the registry
	ErrUndefinedPlaceholder = errors.New("undefined placeholder")

	// ErrCyclicReference is returned when a resolution chain revisits an alias
	ErrCyclicReference = errors.New("cyclic alias reference")

	// ErrBadFormat is returned when a template or one of its format specs is malformed
	ErrBadFormat = errors.New("bad template format")

	// ErrCallable is returned when a path function fails
	ErrCallable = errors.New("path function failed")

	// ErrInvalidAlias is returned when a binding cannot be registered
	ErrInvalidAlias = errors.New("invalid alias")
)

// UnknownAliasError represents a lookup of a name that was never registered
type UnknownAliasError struct {
	Name  string
	Known []string
}

func (e *UnknownAliasError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown alias %q (registry is empty)", e.Name)
	}
	return fmt.Sprintf("unknown alias %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownAliasError) Is(target error) bool {
	return target == ErrUnknownAlias
}

// PlaceholderError represents a template whose placeholders could not all be
// filled from the supplied arguments or from sibling aliases
type PlaceholderError struct {
	Alias   string
	Missing []string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("cannot resolve %q: no value for placeholder(s) %s; supply them as arguments to Resolve",
		e.Alias, strings.Join(e.Missing, ", "))
}

func (e *PlaceholderError) Is(target error) bool {
	return target == ErrUndefinedPlaceholder
}

// CycleError represents a resolution chain that revisits an alias
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic alias reference: %s", strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCyclicReference
}

// TemplateError represents a malformed template string
type TemplateError struct {
	Alias  string
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("malformed template for %q: %s", e.Alias, e.Reason)
}

func (e *TemplateError) Is(target error) bool {
	return target == ErrBadFormat
}

// FormatError represents a format spec that does not apply to the given value
type FormatError struct {
	Alias       string
	Placeholder string
	Spec        string
	Value       any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format placeholder %q in %q: spec %q does not apply to value %v (%T)",
		e.Placeholder, e.Alias, e.Spec, e.Value, e.Value)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrBadFormat
}

// CallableError wraps an error returned by a user-supplied path function
type CallableError struct {
	Alias string
	Err   error
}

func (e *CallableError) Error() string {
	return fmt.Sprintf("path function for %q failed: %v", e.Alias, e.Err)
}

func (e *CallableError) Is(target error) bool {
	return target == ErrCallable
}

func (e *CallableError) Unwrap() error {
	return e.Err
}

// InvalidAliasError represents a binding that cannot be registered
type InvalidAliasError struct {
	Name   string
	Reason string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("cannot register alias %q: %s", e.Name, e.Reason)
}

func (e *InvalidAliasError) Is(target error) bool {
	return target == ErrInvalidAlias
}

// Helper functions for creating errors

// NewUnknownAliasError creates a new UnknownAliasError
func NewUnknownAliasError(name string, known []string) error {
	return &UnknownAliasError{Name: name, Known: known}
}

// NewPlaceholderError creates a new PlaceholderError
func NewPlaceholderError(alias string, missing []string) error {
	return &PlaceholderError{Alias: alias, Missing: missing}
}

// NewCycleError creates a new CycleError
func NewCycleError(chain []string) error {
	return &CycleError{Chain: chain}
}

// NewTemplateError creates a new TemplateError
func NewTemplateError(alias, reason string) error {
	return &TemplateError{Alias: alias, Reason: reason}
}

// NewFormatError creates a new FormatError
func NewFormatError(alias, placeholder, spec string, value any) error {
	return &FormatError{Alias: alias, Placeholder: placeholder, Spec: spec, Value: value}
}

// NewCallableError creates a new CallableError
func NewCallableError(alias string, err error) error {
	return &CallableError{Alias: alias, Err: err}
}

// NewInvalidAliasError creates a new InvalidAliasError
func NewInvalidAliasError(name, reason string) error {
	return &InvalidAliasError{Name: name, Reason: reason}
}

// IsUnknownAlias checks if an error is an unknown alias error
func IsUnknownAlias(err error) bool {
	return errors.Is(err, ErrUnknownAlias)
}

// IsUndefinedPlaceholder checks if an error is an undefined placeholder error
func IsUndefinedPlaceholder(err error) bool {
	return errors.Is(err, ErrUndefinedPlaceholder)
}

// IsCyclicReference checks if an error is a cyclic reference error
func IsCyclicReference(err error) bool {
	return errors.Is(err, ErrCyclicReference)
}

// IsBadFormat checks if an error is a bad format error
func IsBadFormat(err error) bool {
	return errors.Is(err, ErrBadFormat)
}

// IsCallable checks if an error is a path function error
func IsCallable(err error) bool {
	return errors.Is(err, ErrCallable)
}

// IsInvalidAlias checks if an error is an invalid alias error
func IsInvalidAlias(err error) bool {
	return errors.Is(err, ErrInvalidAlias)
}
