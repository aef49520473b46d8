package nav

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrDecode     = errors.New("decode failed")
)

// ValidationError is a user-correctable input problem (e.g. an empty required field).
type ValidationError struct {
	Fields  []string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// DecodeError reports a malformed parameter value. Callers recover by using
// an empty default.
type DecodeError struct {
	Key    string
	Reason string
	Err    error
}

func (e DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Key, e.Reason)
}

func (e DecodeError) Unwrap() error { return e.Err }

func (e DecodeError) Is(target error) bool { return target == ErrDecode }
