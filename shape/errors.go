// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// ConfigurationError is returned when a generator or body constructor
// is given a value it cannot build from, such as a non-positive radius.
// It is always a construction-time error.
type ConfigurationError struct {

	// Field is the name of the offending parameter.
	Field string

	// Value is the offending value.
	Value float32

	// Reason says what was expected.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s = %g: %s", e.Field, e.Value, e.Reason)
}

// CheckPositive returns a [ConfigurationError] if v is not > 0.
func CheckPositive(field string, v float32) error {
	if v > 0 {
		return nil
	}
	return &ConfigurationError{Field: field, Value: v, Reason: "must be positive"}
}

// checkRadii checks that 0 < inner < outer.
func checkRadii(inner, outer float32) error {
	if err := CheckPositive("inner radius", inner); err != nil {
		return err
	}
	if outer <= inner {
		return &ConfigurationError{Field: "outer radius", Value: outer, Reason: fmt.Sprintf("must be greater than inner radius %g", inner)}
	}
	return nil
}

// checkSegments checks that a mesh has at least 3 segments.
func checkSegments(field string, segs int) error {
	if segs >= 3 {
		return nil
	}
	return &ConfigurationError{Field: field, Value: float32(segs), Reason: "must be at least 3"}
}
