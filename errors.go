// Package toolloop - errors.go
// Defines agent-level errors.

package toolloop

import "errors"

var (
	ErrToolNotFound = errors.New("tool not found")
	ErrNoCompletion = errors.New("model returned no choices")
)
