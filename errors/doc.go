/*
Package errors provides semantic error types for the pathtemplates library.

The package defines the resolution failure modes with specific types that can
be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrUnknownAlias         = errors.New("unknown alias")
	    ErrUndefinedPlaceholder = errors.New("undefined placeholder")
	    ErrCyclicReference      = errors.New("cyclic alias reference")
	    ErrBadFormat            = errors.New("bad template format")
	    ErrCallable             = errors.New("path function failed")
	    ErrInvalidAlias         = errors.New("invalid alias")
	)

Usage:

	// Check error type
	p, err := files.Resolve("epochs", pathtemplates.Args{"subject": 1})
	if err != nil {
	    if errors.IsUndefinedPlaceholder(err) {
	        // A placeholder had neither an argument nor a sibling alias
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownAliasError("epochs", known)
	err := errors.NewCycleError([]string{"a", "b", "a"})
	err := errors.NewFormatError("epochs", "subject", "03d", "one")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
