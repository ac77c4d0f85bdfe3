package validators

import (
	"errors"
	"strings"
)

// ErrInvalidConfig is matched by every [FieldErrors] value.
var ErrInvalidConfig = errors.New("invalid config")

// FieldError is one violated rule.
type FieldError struct {
	// Field is the dotted path of the offending key, e.g. "server.port".
	Field string
	// Rule is the validation tag that failed, e.g. "required" or "oneof".
	Rule string
	// Param is the rule parameter, if any.
	Param string
}

func (e FieldError) String() string {
	if e.Param == "" {
		return e.Field + ": " + e.Rule
	}
	return e.Field + ": " + e.Rule + "=" + e.Param
}

// FieldErrors lists every violated rule of one validation run.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.String()
	}
	return ErrInvalidConfig.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidConfig
}
