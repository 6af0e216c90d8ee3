package interval

import (
	"cmp"
	"slices"
	"time"

	"example.com/healthrecords/internal/validation"
)

// Holder is a sub-object owning its own TimeInterval (sleep stage, exercise
// segment, exercise lap).
type Holder interface {
	Interval() TimeInterval
}

// Timed is a sample carrying a single timestamp.
type Timed interface {
	SampleTime() time.Time
}

// Sort returns a copy of holders stably sorted by interval start, then end.
func Sort[H Holder](holders []H) []H {
	if holders == nil {
		return nil
	}
	sorted := slices.Clone(holders)
	slices.SortStableFunc(sorted, func(a, b H) int {
		ai, bi := a.Interval(), b.Interval()
		return cmp.Or(ai.Start().Compare(bi.Start()), ai.End().Compare(bi.End()))
	})
	return sorted
}

// SortAndValidate sorts holders by start and end and checks that each lies within
// [parentStart, parentEnd] and that sorted neighbours do not overlap. Touching
// endpoints and zero-length intervals are accepted. Reported indexes refer to
// the sorted sequence, which is also what is returned.
func SortAndValidate[H Holder](parentStart, parentEnd time.Time, holders []H, collection string) ([]H, error) {
	sorted := Sort(holders)
	if err := ValidateSorted(parentStart, parentEnd, sorted, collection); err != nil {
		return nil, err
	}
	return sorted, nil
}

// ValidateSorted applies the containment and overlap checks of SortAndValidate
// to an already sorted sequence.
func ValidateSorted[H Holder](parentStart, parentEnd time.Time, sorted []H, collection string) error {
	var previous *TimeInterval
	for i, holder := range sorted {
		current := holder.Interval()
		if current.Start().Before(parentStart) || current.End().After(parentEnd) {
			return validation.SubIntervalOutOfBounds(collection, i)
		}
		if previous != nil && previous.End().After(current.Start()) {
			return validation.OverlappingSubIntervals(collection, i-1, i)
		}
		previous = &current
	}
	return nil
}

// ValidateSamplesInBounds fails on the first sample whose time is outside
// [parentStart, parentEnd]. Order and duplicates are not checked.
func ValidateSamplesInBounds[S Timed](parentStart, parentEnd time.Time, samples []S, collection string) error {
	for i, sample := range samples {
		at := sample.SampleTime()
		if at.Before(parentStart) || at.After(parentEnd) {
			return validation.SampleOutOfBounds(collection, i, at)
		}
	}
	return nil
}
