package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// MsgInternalError is the only text a 500 response exposes for failures
// that are not a cost coercion error.
const MsgInternalError = "Internal server error"

// ValidationError reports a create request that is missing fields or has
// fields of the wrong shape.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "Missing required fields: " + strings.Join(e.Missing, ", ")
	}
	if e.Reason != "" {
		return e.Reason
	}
	return "Missing required fields"
}

// CoercionError reports a field value that could not be converted to the
// domain type.
type CoercionError struct {
	Field string
	Value string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("could not convert %s to float: %s", e.Field, e.Value)
}
