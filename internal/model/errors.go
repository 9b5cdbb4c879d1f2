package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports every violated field at once, not just the first.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	// Stable order for error messages.
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// LimitError reports a per-call limit violation, naming the offending limit.
type LimitError struct {
	What  string
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit exceeded (max %d)", e.What, e.Limit)
}
