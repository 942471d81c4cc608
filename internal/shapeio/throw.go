package shapeio

import "github.com/pkg/errors"

// Threading errors up and down every little parsing helper would add a ton of
// noise to the readers. Instead, we use panics, and the public Read functions
// recover to convert to an error.

type parseError struct {
	error
}

// Panic with a parse error.
func fatalf(format string, args ...interface{}) {
	panic(parseError{errors.Errorf(format, args...)})
}

// Panic with a parse error wrapping err.
func wrapf(err error, format string, args ...interface{}) {
	panic(parseError{errors.Wrapf(err, format, args...)})
}

// HandleParsePanicRecover turns a recovered parse panic back into an error.
// Any other panic is re-raised.
func HandleParsePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(parseError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
