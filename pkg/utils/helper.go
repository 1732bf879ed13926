package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID converts a positive decimal id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// OptionalString maps blank input to nil.
func OptionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// Deref returns the pointed-to string or fallback.
func Deref(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
