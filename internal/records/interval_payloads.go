package records

import (
	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

const (
	maxBurnedCalories  = 1e9
	maxDistanceMeters  = 1_000_000.0
	maxElevationMeters = 1_000_000.0
	maxFloors          = 1_000_000.0
	maxHydrationLiters = 100.0
	maxCount           = 1_000_000
)

// ActiveCaloriesBurned is energy burned by activity over a span.
type ActiveCaloriesBurned struct {
	Energy units.Energy `json:"energy" required:"true"`
}

func (ActiveCaloriesBurned) RecordType() RecordType { return TypeActiveCaloriesBurned }
func (ActiveCaloriesBurned) interval()              {}
func (p ActiveCaloriesBurned) normalize() Payload   { return p }

func (p ActiveCaloriesBurned) schema(span) schema {
	return rules(validation.RequireInRange(p.Energy.InCalories(), 0, maxBurnedCalories, "energy"))
}

func (p ActiveCaloriesBurned) fill(r *internalrecord.Record) {
	r.SetValue("energy", p.Energy.InCalories())
}

// Distance is distance travelled over a span.
type Distance struct {
	Distance units.Length `json:"distance" required:"true"`
}

func (Distance) RecordType() RecordType { return TypeDistance }
func (Distance) interval()              {}
func (p Distance) normalize() Payload   { return p }

func (p Distance) schema(span) schema {
	return rules(validation.RequireInRange(p.Distance.InMeters(), 0, maxDistanceMeters, "distance"))
}

func (p Distance) fill(r *internalrecord.Record) { r.SetValue("distance", p.Distance.InMeters()) }

// ElevationGained is net elevation change over a span; it may be negative.
type ElevationGained struct {
	Elevation units.Length `json:"elevation" required:"true"`
}

func (ElevationGained) RecordType() RecordType { return TypeElevationGained }
func (ElevationGained) interval()              {}
func (p ElevationGained) normalize() Payload   { return p }

func (p ElevationGained) schema(span) schema {
	return rules(validation.RequireInRange(p.Elevation.InMeters(), -maxElevationMeters, maxElevationMeters, "elevation"))
}

func (p ElevationGained) fill(r *internalrecord.Record) {
	r.SetValue("elevation", p.Elevation.InMeters())
}

// FloorsClimbed is the number of floors climbed over a span.
type FloorsClimbed struct {
	Floors float64 `json:"floors" required:"true"`
}

func (FloorsClimbed) RecordType() RecordType { return TypeFloorsClimbed }
func (FloorsClimbed) interval()              {}
func (p FloorsClimbed) normalize() Payload   { return p }

func (p FloorsClimbed) schema(span) schema {
	return rules(validation.RequireInRange(p.Floors, 0, maxFloors, "floors"))
}

func (p FloorsClimbed) fill(r *internalrecord.Record) { r.SetValue("floors", p.Floors) }

// Hydration is fluid intake over a span.
type Hydration struct {
	Volume units.Volume `json:"volume" required:"true"`
}

func (Hydration) RecordType() RecordType { return TypeHydration }
func (Hydration) interval()              {}
func (p Hydration) normalize() Payload   { return p }

func (p Hydration) schema(span) schema {
	return rules(validation.RequireInRange(p.Volume.InLiters(), 0, maxHydrationLiters, "volume"))
}

func (p Hydration) fill(r *internalrecord.Record) { r.SetValue("volume", p.Volume.InLiters()) }

// MenstruationPeriod marks a menstrual period. It has no fields.
type MenstruationPeriod struct{}

func (MenstruationPeriod) RecordType() RecordType      { return TypeMenstruationPeriod }
func (MenstruationPeriod) interval()                   {}
func (p MenstruationPeriod) normalize() Payload        { return p }
func (MenstruationPeriod) schema(span) schema          { return schema{} }
func (MenstruationPeriod) fill(*internalrecord.Record) {}

// Steps is a step count over a span.
type Steps struct {
	Count int64 `json:"count" required:"true"`
}

func (Steps) RecordType() RecordType { return TypeSteps }
func (Steps) interval()              {}
func (p Steps) normalize() Payload   { return p }

func (p Steps) schema(span) schema {
	return rules(validation.RequireInRange(p.Count, 1, maxCount, "count"))
}

func (p Steps) fill(r *internalrecord.Record) { r.SetInt("count", p.Count) }

// TotalCaloriesBurned is total energy burned over a span, including basal.
type TotalCaloriesBurned struct {
	Energy units.Energy `json:"energy" required:"true"`
}

func (TotalCaloriesBurned) RecordType() RecordType { return TypeTotalCaloriesBurned }
func (TotalCaloriesBurned) interval()              {}
func (p TotalCaloriesBurned) normalize() Payload   { return p }

func (p TotalCaloriesBurned) schema(span) schema {
	return rules(validation.RequireInRange(p.Energy.InCalories(), 0, maxBurnedCalories, "energy"))
}

func (p TotalCaloriesBurned) fill(r *internalrecord.Record) {
	r.SetValue("energy", p.Energy.InCalories())
}

// WheelchairPushes is a push count over a span.
type WheelchairPushes struct {
	Count int64 `json:"count" required:"true"`
}

func (WheelchairPushes) RecordType() RecordType { return TypeWheelchairPushes }
func (WheelchairPushes) interval()              {}
func (p WheelchairPushes) normalize() Payload   { return p }

func (p WheelchairPushes) schema(span) schema {
	return rules(validation.RequireInRange(p.Count, 1, maxCount, "count"))
}

func (p WheelchairPushes) fill(r *internalrecord.Record) { r.SetInt("count", p.Count) }
