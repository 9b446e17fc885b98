package bond

import "errors"

var (
	ErrBondNotFound = errors.New("bond not found")
)
