package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateID    = errors.New("record id already exists")
	ErrFailedToInsert = errors.New("failed to insert record")
)
