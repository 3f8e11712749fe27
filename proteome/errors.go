package proteome

import "errors"

var (
	ErrDivisionByZero  = errors.New("reference proteome is empty")
	ErrFormat          = errors.New("unrecognized organism name")
	ErrUnknownOrganism = errors.New("organism has no reference proteome")
	ErrLookupFailure   = errors.New("reference proteome lookup failed")
)
