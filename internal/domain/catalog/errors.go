package catalog

import "errors"

var (
	ErrHeadquarterNotFound = errors.New("headquarter not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrPositionNotFound    = errors.New("position not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrBondTypeNotFound    = errors.New("bond type not found")
	ErrNameExists          = errors.New("name already exists")
)
