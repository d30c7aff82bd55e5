package errors

import (
	"bytes"
	"fmt"
)

// Errors is a non-empty list of errors. A nil Errors means no errors, so
// callers can compare against nil without a Len check.
type Errors interface {
	error
	// Slice returns a copy of the underlying (non-nil) errors.
	Slice() []error
	// Len is always > 0 for a non-nil Errors.
	Len() int
}

type errorSlice []error

func (m errorSlice) Slice() []error {
	return append([]error(nil), m...)
}

func (m errorSlice) Len() int {
	return len(m)
}

func (m errorSlice) Error() string {
	var b bytes.Buffer
	for i, err := range m {
		if i > 0 {
			fmt.Fprint(&b, "\n")
		}
		fmt.Fprint(&b, err)
	}
	return b.String()
}

// Append adds err to errs, flattening err when it is itself an Errors.
// A nil err returns errs unchanged.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var s errorSlice
	if errs != nil {
		s = errorSlice(errs.Slice())
	}
	if list, ok := err.(Errors); ok {
		return errorSlice(append(s, list.Slice()...))
	}
	return append(s, err)
}

// Combine combines errors e & f into a single error
func Combine(e, f error) error {
	if e == nil {
		return f
	}
	if f == nil {
		return e
	}
	if list, ok := e.(Errors); ok {
		return Append(list, f)
	}
	return Append(errorSlice{e}, f)
}

// Defer is a helper for deferring error-returning functions such as Close
// and Flush without losing an earlier error.
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
