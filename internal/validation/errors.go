// Package validation holds the range and enum rules shared by every record type
// together with the construction-time error taxonomy.
package validation

import (
	"errors"
	"fmt"
	"time"
)

// Kind sentinels. Every *Error unwraps to exactly one of these.
var (
	// ErrMissingField indicates a required field was not supplied.
	ErrMissingField = errors.New("missing field")
	// ErrOutOfRange indicates a numeric value outside its documented bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidEnumValue indicates a value outside an enum's closed set.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidInterval indicates an interval whose end precedes its start.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrSubIntervalOutOfBounds indicates a nested interval escaping its parent span.
	ErrSubIntervalOutOfBounds = errors.New("sub-interval out of bounds")
	// ErrOverlappingSubIntervals indicates two nested intervals overlap.
	ErrOverlappingSubIntervals = errors.New("overlapping sub-intervals")
	// ErrSampleOutOfBounds indicates a sample timestamp outside the record span.
	ErrSampleOutOfBounds = errors.New("sample out of bounds")
	// ErrFutureTimestamp indicates a record instant or start after now.
	ErrFutureTimestamp = errors.New("timestamp in the future")
	// ErrIncompatibleValue indicates two individually valid values that cannot be combined.
	ErrIncompatibleValue = errors.New("incompatible value")
)

// Error describes a rejected record field.
type Error struct {
	Kind       error
	Field      string
	Value      any
	Min        any
	Max        any
	Index      int
	OtherIndex int
	Time       time.Time
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMissingField:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case ErrOutOfRange:
		return fmt.Sprintf("%s must be in range [%v, %v], currently %v", e.Field, e.Min, e.Max, e.Value)
	case ErrInvalidEnumValue:
		return fmt.Sprintf("%s: %s=%v", e.Kind, e.Field, e.Value)
	case ErrInvalidInterval:
		return fmt.Sprintf("%s: %s end %v is before start %v", e.Kind, e.Field, e.Max, e.Min)
	case ErrSubIntervalOutOfBounds:
		return fmt.Sprintf("%s: %s[%d] is outside the parent interval", e.Kind, e.Field, e.Index)
	case ErrOverlappingSubIntervals:
		return fmt.Sprintf("%s: %s[%d] overlaps %s[%d]", e.Kind, e.Field, e.Index, e.Field, e.OtherIndex)
	case ErrSampleOutOfBounds:
		return fmt.Sprintf("%s: %s[%d] at %s is outside the parent interval", e.Kind, e.Field, e.Index, e.Time.Format(time.RFC3339Nano))
	case ErrFutureTimestamp:
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Time.Format(time.RFC3339Nano))
	default:
		return fmt.Sprintf("%s: %s=%v", e.Kind, e.Field, e.Value)
	}
}

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// KindName returns a snake_case name for the kind carried by err, or "" when
// err is not a validation error.
func KindName(err error) string {
	var verr *Error
	if !errors.As(err, &verr) {
		return ""
	}
	switch verr.Kind {
	case ErrMissingField:
		return "missing_field"
	case ErrOutOfRange:
		return "out_of_range"
	case ErrInvalidEnumValue:
		return "invalid_enum_value"
	case ErrInvalidInterval:
		return "invalid_interval"
	case ErrSubIntervalOutOfBounds:
		return "sub_interval_out_of_bounds"
	case ErrOverlappingSubIntervals:
		return "overlapping_sub_intervals"
	case ErrSampleOutOfBounds:
		return "sample_out_of_bounds"
	case ErrFutureTimestamp:
		return "future_timestamp"
	case ErrIncompatibleValue:
		return "incompatible_value"
	}
	return "unknown"
}

// MissingField builds an ErrMissingField error.
func MissingField(field string) error {
	return &Error{Kind: ErrMissingField, Field: field}
}

// InvalidEnumValue builds an ErrInvalidEnumValue error.
func InvalidEnumValue(enumName string, value any) error {
	return &Error{Kind: ErrInvalidEnumValue, Field: enumName, Value: value}
}

// InvalidInterval builds an ErrInvalidInterval error.
func InvalidInterval(field string, start, end time.Time) error {
	return &Error{Kind: ErrInvalidInterval, Field: field, Min: start, Max: end}
}

// SubIntervalOutOfBounds builds an ErrSubIntervalOutOfBounds error.
func SubIntervalOutOfBounds(collection string, index int) error {
	return &Error{Kind: ErrSubIntervalOutOfBounds, Field: collection, Index: index}
}

// OverlappingSubIntervals builds an ErrOverlappingSubIntervals error.
func OverlappingSubIntervals(collection string, a, b int) error {
	return &Error{Kind: ErrOverlappingSubIntervals, Field: collection, Index: a, OtherIndex: b}
}

// SampleOutOfBounds builds an ErrSampleOutOfBounds error.
func SampleOutOfBounds(collection string, index int, at time.Time) error {
	return &Error{Kind: ErrSampleOutOfBounds, Field: collection, Index: index, Time: at}
}

// FutureTimestamp builds an ErrFutureTimestamp error.
func FutureTimestamp(field string, at time.Time) error {
	return &Error{Kind: ErrFutureTimestamp, Field: field, Time: at}
}

// Incompatible builds an ErrIncompatibleValue error.
func Incompatible(field string, value any) error {
	return &Error{Kind: ErrIncompatibleValue, Field: field, Value: value}
}
