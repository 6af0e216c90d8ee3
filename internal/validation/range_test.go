package validation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireInRangeInclusiveBounds(t *testing.T) {
	require.NoError(t, RequireInRange(1, 1, 300, "bpm"))
	require.NoError(t, RequireInRange(300, 1, 300, "bpm"))
	require.NoError(t, RequireInRange(0.0, 0.0, 100.0, "percentage"))

	err := RequireInRange(0, 1, 300, "bpm")
	require.ErrorIs(t, err, ErrOutOfRange)
	err = RequireInRange(301, 1, 300, "bpm")
	require.ErrorIs(t, err, ErrOutOfRange)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "bpm", verr.Field)
	assert.Equal(t, 301, verr.Value)
	assert.Equal(t, 1, verr.Min)
	assert.Equal(t, 300, verr.Max)
	assert.Equal(t, "bpm must be in range [1, 300], currently 301", err.Error())

	require.ErrorIs(t, RequireInRange(math.NaN(), 0, 100, "percentage"), ErrOutOfRange)
	require.ErrorIs(t, RequireNonNegative(math.NaN(), "accuracy"), ErrOutOfRange)
}

func TestRequireInRangeIfExists(t *testing.T) {
	require.NoError(t, RequireInRangeIfExists[float64](nil, 0, 100, "biotin"))

	ok := 100.0
	require.NoError(t, RequireInRangeIfExists(&ok, 0, 100, "biotin"))

	bad := 100.5
	require.ErrorIs(t, RequireInRangeIfExists(&bad, 0, 100, "biotin"), ErrOutOfRange)
}

func TestRequireNonNegative(t *testing.T) {
	require.NoError(t, RequireNonNegative(0, "repetitions"))
	require.NoError(t, RequireNonNegative(12.5, "accuracy"))
	require.ErrorIs(t, RequireNonNegative(-1, "repetitions"), ErrOutOfRange)

	require.NoError(t, RequireNonNegativeIfExists[float64](nil, "accuracy"))
	neg := -0.1
	require.ErrorIs(t, RequireNonNegativeIfExists(&neg, "accuracy"), ErrOutOfRange)
}

type color int

func TestValidateEnumValue(t *testing.T) {
	valid := []color{0, 1, 2}
	for _, c := range valid {
		require.NoError(t, ValidateEnumValue(c, valid, "color"))
	}

	err := ValidateEnumValue(color(7), valid, "color")
	require.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.Equal(t, "invalid_enum_value", KindName(err))
}

func TestRequirePresentAndFirstError(t *testing.T) {
	require.NoError(t, RequirePresent(true, "time"))
	require.ErrorIs(t, RequirePresent(false, "time"), ErrMissingField)

	first := MissingField("a")
	got := FirstError(nil, first, RequireInRange(5, 0, 1, "b"))
	assert.Same(t, first, got)
	assert.NoError(t, FirstError(nil, nil))
}

func TestKindNameCoversTaxonomy(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	cases := map[string]error{
		"missing_field":              MissingField("time"),
		"out_of_range":               RequireInRange(5, 0, 1, "x"),
		"invalid_enum_value":         InvalidEnumValue("mealType", 9),
		"invalid_interval":           InvalidInterval("interval", now, now.Add(-time.Minute)),
		"sub_interval_out_of_bounds": SubIntervalOutOfBounds("stages", 1),
		"overlapping_sub_intervals":  OverlappingSubIntervals("laps", 0, 1),
		"sample_out_of_bounds":       SampleOutOfBounds("samples", 3, now),
		"future_timestamp":           FutureTimestamp("time", now),
		"incompatible_value":         Incompatible("segmentType", 4),
	}
	for want, err := range cases {
		assert.Equal(t, want, KindName(err), err.Error())
	}
	assert.Equal(t, "", KindName(errors.New("plain")))
}
