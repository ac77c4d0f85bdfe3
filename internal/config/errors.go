package config

import "errors"

// Validation errors returned by [GetSettings].
var (
	// ErrMissingApp indicates that no application name was given.
	ErrMissingApp = errors.New("application name is required (--app or PICFG_APP)")
	// ErrInvalidTarget indicates a target other than project or home.
	ErrInvalidTarget = errors.New("invalid target layer")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates a log format other than console or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrMissingCommand indicates that no command was given.
	ErrMissingCommand = errors.New("command is required")
)
