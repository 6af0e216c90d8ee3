package validation

import (
	"cmp"
	"slices"
)

// RequireInRange rejects value when it falls outside the inclusive [min, max].
// NaN is never in range.
func RequireInRange[T cmp.Ordered](value, min, max T, field string) error {
	if isNaN(value) || value < min || value > max {
		return &Error{Kind: ErrOutOfRange, Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// RequireInRangeIfExists applies RequireInRange only when value is present.
func RequireInRangeIfExists[T cmp.Ordered](value *T, min, max T, field string) error {
	if value == nil {
		return nil
	}
	return RequireInRange(*value, min, max, field)
}

// RequireNonNegative rejects negative values.
func RequireNonNegative[T cmp.Ordered](value T, field string) error {
	var zero T
	if isNaN(value) || value < zero {
		return &Error{Kind: ErrOutOfRange, Field: field, Value: value, Min: zero, Max: "+inf"}
	}
	return nil
}

// RequireNonNegativeIfExists applies RequireNonNegative only when value is present.
func RequireNonNegativeIfExists[T cmp.Ordered](value *T, field string) error {
	if value == nil {
		return nil
	}
	return RequireNonNegative(*value, field)
}

// ValidateEnumValue rejects values that are not members of valid.
func ValidateEnumValue[E comparable](value E, valid []E, enumName string) error {
	if !slices.Contains(valid, value) {
		return InvalidEnumValue(enumName, value)
	}
	return nil
}

// RequirePresent rejects a required field that was not supplied.
func RequirePresent(present bool, field string) error {
	if !present {
		return MissingField(field)
	}
	return nil
}

// FirstError returns the first non-nil error, in argument order.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isNaN[T cmp.Ordered](value T) bool {
	return value != value
}
