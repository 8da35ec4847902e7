package pack

import "errors"

// Version lifecycle errors.
var (
	ErrVersionExists   = errors.New("version already exists")
	ErrVersionNotFound = errors.New("version not found")
	ErrLastVersion     = errors.New("cannot delete the last remaining version")
)
