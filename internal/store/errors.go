package store

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
)
