package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not registered")
	ErrNameNotExpected  = errors.New("registration is not waiting for a name")
)
