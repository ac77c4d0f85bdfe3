package cli

import "errors"

var (
	// ErrUnknownCommand indicates a command picfg does not implement.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage indicates a wrong number of command arguments.
	ErrUsage = errors.New("wrong number of arguments")
	// ErrKeyNotFound indicates that get found nothing at the key.
	ErrKeyNotFound = errors.New("key not found")
)
