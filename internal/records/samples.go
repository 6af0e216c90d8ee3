package records

import (
	"time"

	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/interval"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

// mapSlice applies f to every element. The result is never nil so that an
// absent series and an empty one encode identically.
func mapSlice[S, T any](in []S, f func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func sampleRules[S any](samples []S, check func(S) error) []error {
	errs := make([]error, 0, len(samples))
	for _, s := range samples {
		errs = append(errs, check(s))
	}
	return errs
}

func optional[U any](u *U, canonical func(U) float64) *float64 {
	if u == nil {
		return nil
	}
	v := canonical(*u)
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// HeartRateSample is one heart rate reading.
type HeartRateSample struct {
	Time           time.Time `json:"time" required:"true"`
	BeatsPerMinute int64     `json:"beats_per_minute" required:"true"`
}

func (s HeartRateSample) SampleTime() time.Time { return s.Time }

// HeartRate is a series of heart rate readings.
type HeartRate struct {
	Samples []HeartRateSample `json:"samples"`
}

func (HeartRate) RecordType() RecordType { return TypeHeartRate }
func (HeartRate) interval()              {}

func (p HeartRate) normalize() Payload {
	return HeartRate{Samples: mapSlice(p.Samples, func(s HeartRateSample) HeartRateSample {
		s.Time = utc(s.Time)
		return s
	})}
}

func (p HeartRate) schema(s span) schema {
	return schema{
		required: requireTimes(p.Samples, "samples"),
		rules: sampleRules(p.Samples, func(sample HeartRateSample) error {
			return validation.RequireInRange(sample.BeatsPerMinute, 1, 300, "beatsPerMinute")
		}),
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Samples, "samples")},
	}
}

func (p HeartRate) fill(r *internalrecord.Record) {
	r.SetSamples("samples", mapSlice(p.Samples, func(s HeartRateSample) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: s.Time.UnixMilli(), Value: float64(s.BeatsPerMinute)}
	}))
}

// SpeedSample is one speed reading.
type SpeedSample struct {
	Time  time.Time      `json:"time" required:"true"`
	Speed units.Velocity `json:"speed" required:"true"`
}

func (s SpeedSample) SampleTime() time.Time { return s.Time }

// Speed is a series of speed readings.
type Speed struct {
	Samples []SpeedSample `json:"samples"`
}

func (Speed) RecordType() RecordType { return TypeSpeed }
func (Speed) interval()              {}

func (p Speed) normalize() Payload {
	return Speed{Samples: mapSlice(p.Samples, func(s SpeedSample) SpeedSample {
		s.Time = utc(s.Time)
		return s
	})}
}

func (p Speed) schema(s span) schema {
	return schema{
		required: requireTimes(p.Samples, "samples"),
		rules: sampleRules(p.Samples, func(sample SpeedSample) error {
			return validation.RequireInRange(sample.Speed.InMetersPerSecond(), 0, 1_000_000, "speed")
		}),
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Samples, "samples")},
	}
}

func (p Speed) fill(r *internalrecord.Record) {
	r.SetSamples("samples", mapSlice(p.Samples, func(s SpeedSample) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: s.Time.UnixMilli(), Value: s.Speed.InMetersPerSecond()}
	}))
}

// PowerSample is one power reading.
type PowerSample struct {
	Time  time.Time   `json:"time" required:"true"`
	Power units.Power `json:"power" required:"true"`
}

func (s PowerSample) SampleTime() time.Time { return s.Time }

// Power is a series of power readings.
type Power struct {
	Samples []PowerSample `json:"samples"`
}

func (Power) RecordType() RecordType { return TypePower }
func (Power) interval()              {}

func (p Power) normalize() Payload {
	return Power{Samples: mapSlice(p.Samples, func(s PowerSample) PowerSample {
		s.Time = utc(s.Time)
		return s
	})}
}

func (p Power) schema(s span) schema {
	return schema{
		required: requireTimes(p.Samples, "samples"),
		rules: sampleRules(p.Samples, func(sample PowerSample) error {
			return validation.RequireInRange(sample.Power.InWatts(), 0, 100_000, "power")
		}),
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Samples, "samples")},
	}
}

func (p Power) fill(r *internalrecord.Record) {
	r.SetSamples("samples", mapSlice(p.Samples, func(s PowerSample) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: s.Time.UnixMilli(), Value: s.Power.InWatts()}
	}))
}

// CyclingPedalingCadenceSample is one pedaling cadence reading.
type CyclingPedalingCadenceSample struct {
	Time                 time.Time `json:"time" required:"true"`
	RevolutionsPerMinute float64   `json:"revolutions_per_minute" required:"true"`
}

func (s CyclingPedalingCadenceSample) SampleTime() time.Time { return s.Time }

// CyclingPedalingCadence is a series of pedaling cadence readings.
type CyclingPedalingCadence struct {
	Samples []CyclingPedalingCadenceSample `json:"samples"`
}

func (CyclingPedalingCadence) RecordType() RecordType { return TypeCyclingPedalingCadence }
func (CyclingPedalingCadence) interval()              {}

func (p CyclingPedalingCadence) normalize() Payload {
	return CyclingPedalingCadence{Samples: mapSlice(p.Samples, func(s CyclingPedalingCadenceSample) CyclingPedalingCadenceSample {
		s.Time = utc(s.Time)
		return s
	})}
}

func (p CyclingPedalingCadence) schema(s span) schema {
	return schema{
		required: requireTimes(p.Samples, "samples"),
		rules: sampleRules(p.Samples, func(sample CyclingPedalingCadenceSample) error {
			return validation.RequireInRange(sample.RevolutionsPerMinute, 0, 10_000, "revolutionsPerMinute")
		}),
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Samples, "samples")},
	}
}

func (p CyclingPedalingCadence) fill(r *internalrecord.Record) {
	r.SetSamples("samples", mapSlice(p.Samples, func(s CyclingPedalingCadenceSample) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: s.Time.UnixMilli(), Value: s.RevolutionsPerMinute}
	}))
}

// StepsCadenceSample is one step cadence reading.
type StepsCadenceSample struct {
	Time time.Time `json:"time" required:"true"`
	Rate float64   `json:"rate" required:"true"`
}

func (s StepsCadenceSample) SampleTime() time.Time { return s.Time }

// StepsCadence is a series of step cadence readings in steps per minute.
type StepsCadence struct {
	Samples []StepsCadenceSample `json:"samples"`
}

func (StepsCadence) RecordType() RecordType { return TypeStepsCadence }
func (StepsCadence) interval()              {}

func (p StepsCadence) normalize() Payload {
	return StepsCadence{Samples: mapSlice(p.Samples, func(s StepsCadenceSample) StepsCadenceSample {
		s.Time = utc(s.Time)
		return s
	})}
}

func (p StepsCadence) schema(s span) schema {
	return schema{
		required: requireTimes(p.Samples, "samples"),
		rules: sampleRules(p.Samples, func(sample StepsCadenceSample) error {
			return validation.RequireInRange(sample.Rate, 0, 10_000, "rate")
		}),
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Samples, "samples")},
	}
}

func (p StepsCadence) fill(r *internalrecord.Record) {
	r.SetSamples("samples", mapSlice(p.Samples, func(s StepsCadenceSample) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: s.Time.UnixMilli(), Value: s.Rate}
	}))
}

// SkinTemperatureDelta is a deviation from the baseline skin temperature.
type SkinTemperatureDelta struct {
	Time  time.Time              `json:"time" required:"true"`
	Delta units.TemperatureDelta `json:"delta" required:"true"`
}

func (d SkinTemperatureDelta) SampleTime() time.Time { return d.Time }

// SkinTemperature is a series of skin temperature deltas against an optional
// baseline.
type SkinTemperature struct {
	Baseline            *units.Temperature                 `json:"baseline,omitempty"`
	Deltas              []SkinTemperatureDelta             `json:"deltas"`
	MeasurementLocation SkinTemperatureMeasurementLocation `json:"measurement_location"`
}

func (SkinTemperature) RecordType() RecordType { return TypeSkinTemperature }
func (SkinTemperature) interval()              {}

func (p SkinTemperature) normalize() Payload {
	return SkinTemperature{
		Baseline: clonePtr(p.Baseline),
		Deltas: mapSlice(p.Deltas, func(d SkinTemperatureDelta) SkinTemperatureDelta {
			d.Time = utc(d.Time)
			return d
		}),
		MeasurementLocation: p.MeasurementLocation,
	}
}

func (p SkinTemperature) schema(s span) schema {
	checks := []error{
		validation.RequireInRangeIfExists(optional(p.Baseline, units.Temperature.InCelsius), 0, maxTemperatureC, "baseline"),
		validateEnum(p.MeasurementLocation, validSkinTemperatureLocations, "measurementLocation"),
	}
	checks = append(checks, sampleRules(p.Deltas, func(d SkinTemperatureDelta) error {
		return validation.RequireInRange(d.Delta.InCelsius(), -30, 30, "delta")
	})...)
	return schema{
		required: requireTimes(p.Deltas, "deltas"),
		rules:    checks,
		samples:  []error{interval.ValidateSamplesInBounds(s.start, s.end, p.Deltas, "deltas")},
	}
}

func (p SkinTemperature) fill(r *internalrecord.Record) {
	r.SetOptionalValue("baseline", optional(p.Baseline, units.Temperature.InCelsius))
	r.SetInt("measurementLocation", int64(p.MeasurementLocation))
	r.SetSamples("deltas", mapSlice(p.Deltas, func(d SkinTemperatureDelta) internalrecord.Sample {
		return internalrecord.Sample{TimeMillis: d.Time.UnixMilli(), Value: d.Delta.InCelsius()}
	}))
}
