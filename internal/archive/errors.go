package archive

import "errors"

var (
	ErrToolNotFound  = errors.New("cabinet tool not found")
	ErrToolFailed    = errors.New("cabinet tool failed")
	ErrArchiveAbsent = errors.New("cabinet file does not exist")
)
