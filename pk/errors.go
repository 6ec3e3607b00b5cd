package pk

import "errors"

// ErrValidation marks rejected inputs: a bad dose, an out-of-range subject or
// grid parameter. ErrConfiguration marks an internally inconsistent
// ModelOptions value, such as a saturable law with Km=0 or an effective
// blood:breath ratio that is not positive.
//
// Both are raised before integration starts; callers classify with errors.Is.
var (
	ErrValidation    = errors.New("invalid simulation input")
	ErrConfiguration = errors.New("inconsistent model configuration")
)
