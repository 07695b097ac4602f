package base

import "errors"

var (
	// ErrInvalidCustomSettings used when bad custom settings are found in
	// the run config
	ErrInvalidCustomSettings = errors.New("invalid custom settings in config")
	// ErrCustomSettingsUnsupported used when custom settings are found in
	// the run config when they shouldn't be
	ErrCustomSettingsUnsupported = errors.New("custom settings not supported")
	// ErrTooMuchBadData used when there is too much missing data to
	// calculate a signal safely
	ErrTooMuchBadData = errors.New("backtesting cannot continue as there is too much invalid data. Please review your dataset")
)

// Strategy is the base implementation of the strategy Handler interface
type Strategy struct{}
