package errorvalues

import "errors"

var (
	ErrTaskNotFound     = errors.New("task doesn't exist")
	ErrTaskExists       = errors.New("such task already exists")
	ErrProgressNotFound = errors.New("progress record doesn't exist")
	ErrProgressExists   = errors.New("such progress record already exists")
	ErrSettingsNotFound = errors.New("settings don't exist")
	ErrInvalidID        = errors.New("invalid record id")
)
