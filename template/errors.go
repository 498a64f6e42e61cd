package template

import "errors"

// ErrGradeOutOfRange is returned when an xi grid's dimensions don't match
// the x/y sizes supplied to BuildPoints.
var ErrGradeOutOfRange = errors.New("template: xi grid dimension mismatch")
