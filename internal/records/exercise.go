package records

import (
	"time"

	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/interval"
	"example.com/healthrecords/internal/units"
	"example.com/healthrecords/internal/validation"
)

const maxLapLengthMeters = 1_000_000.0

// ExerciseSegment is a stretch of a session spent on one movement.
type ExerciseSegment struct {
	Span        interval.TimeInterval `json:"interval" required:"true"`
	SegmentType ExerciseSegmentType   `json:"segment_type"`
	Repetitions int64                 `json:"repetitions"`
}

func (s ExerciseSegment) Interval() interval.TimeInterval { return s.Span }

// ExerciseLap is one lap of a session.
type ExerciseLap struct {
	Span   interval.TimeInterval `json:"interval" required:"true"`
	Length *units.Length         `json:"length,omitempty"`
}

func (l ExerciseLap) Interval() interval.TimeInterval { return l.Span }

// Location is one point of an exercise route.
type Location struct {
	Time               time.Time     `json:"time" required:"true"`
	Latitude           float64       `json:"latitude" required:"true"`
	Longitude          float64       `json:"longitude" required:"true"`
	HorizontalAccuracy *units.Length `json:"horizontal_accuracy,omitempty"`
	VerticalAccuracy   *units.Length `json:"vertical_accuracy,omitempty"`
	Altitude           *units.Length `json:"altitude,omitempty"`
}

func (l Location) SampleTime() time.Time { return l.Time }

func (l Location) normalize() Location {
	return Location{
		Time:               utc(l.Time),
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		HorizontalAccuracy: clonePtr(l.HorizontalAccuracy),
		VerticalAccuracy:   clonePtr(l.VerticalAccuracy),
		Altitude:           clonePtr(l.Altitude),
	}
}

func (l Location) rules() []error {
	return []error{
		validation.RequireInRange(l.Latitude, -90, 90, "latitude"),
		validation.RequireInRange(l.Longitude, -180, 180, "longitude"),
		validation.RequireNonNegativeIfExists(optional(l.HorizontalAccuracy, units.Length.InMeters), "horizontalAccuracy"),
		validation.RequireNonNegativeIfExists(optional(l.VerticalAccuracy, units.Length.InMeters), "verticalAccuracy"),
	}
}

// ToInternal converts the location into its primitive form.
func (l Location) ToInternal() internalrecord.Location {
	return internalrecord.Location{
		TimeMillis:         l.Time.UnixMilli(),
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		HorizontalAccuracy: optional(l.HorizontalAccuracy, units.Length.InMeters),
		VerticalAccuracy:   optional(l.VerticalAccuracy, units.Length.InMeters),
		Altitude:           optional(l.Altitude, units.Length.InMeters),
	}
}

// ExerciseRoute is the GPS track of a session.
type ExerciseRoute struct {
	Locations []Location `json:"locations"`
}

// ExerciseSession is a workout. Segments and laps are kept sorted by start
// time and validated independently of each other.
type ExerciseSession struct {
	ExerciseType ExerciseType      `json:"exercise_type"`
	Title        *string           `json:"title,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
	Segments     []ExerciseSegment `json:"segments"`
	Laps         []ExerciseLap     `json:"laps"`
	Route        *ExerciseRoute    `json:"route,omitempty"`
}

func (ExerciseSession) RecordType() RecordType { return TypeExerciseSession }
func (ExerciseSession) interval()              {}

func (p ExerciseSession) normalize() Payload {
	out := ExerciseSession{
		ExerciseType: p.ExerciseType,
		Title:        clonePtr(p.Title),
		Notes:        clonePtr(p.Notes),
		Segments: interval.Sort(mapSlice(p.Segments, func(s ExerciseSegment) ExerciseSegment {
			s.Span = s.Span.UTC()
			return s
		})),
		Laps: interval.Sort(mapSlice(p.Laps, func(l ExerciseLap) ExerciseLap {
			return ExerciseLap{Span: l.Span.UTC(), Length: clonePtr(l.Length)}
		})),
	}
	if p.Route != nil {
		out.Route = &ExerciseRoute{Locations: mapSlice(p.Route.Locations, Location.normalize)}
	}
	return out
}

func (p ExerciseSession) schema(s span) schema {
	checks := []error{validateEnum(p.ExerciseType, validExerciseTypes, "exerciseType")}
	for _, segment := range p.Segments {
		checks = append(checks,
			validateSegmentType(segment.SegmentType),
			validation.RequireNonNegative(segment.Repetitions, "repetitions"),
		)
		if !SegmentCompatible(p.ExerciseType, segment.SegmentType) {
			checks = append(checks, validation.Incompatible("segmentType", segment.SegmentType))
		}
	}
	for _, lap := range p.Laps {
		checks = append(checks,
			validation.RequireInRangeIfExists(optional(lap.Length, units.Length.InMeters), 0, maxLapLengthMeters, "length"))
	}
	var route []Location
	if p.Route != nil {
		route = p.Route.Locations
	}
	for _, location := range route {
		checks = append(checks, location.rules()...)
	}
	required := append(requireSpans(p.Segments, "segments"), requireSpans(p.Laps, "laps")...)
	required = append(required, requireTimes(route, "route")...)
	return schema{
		required: required,
		rules:    checks,
		holders: []error{
			interval.ValidateSorted(s.start, s.end, p.Segments, "segments"),
			interval.ValidateSorted(s.start, s.end, p.Laps, "laps"),
		},
		samples: []error{interval.ValidateSamplesInBounds(s.start, s.end, route, "route")},
	}
}

func (p ExerciseSession) fill(r *internalrecord.Record) {
	r.SetInt("exerciseType", int64(p.ExerciseType))
	r.SetOptionalString("title", p.Title)
	r.SetOptionalString("notes", p.Notes)
	r.SetSpans("segments", mapSlice(p.Segments, func(s ExerciseSegment) internalrecord.Span {
		return internalrecord.Span{
			StartMillis: s.Span.Start().UnixMilli(),
			EndMillis:   s.Span.End().UnixMilli(),
			Type:        int(s.SegmentType),
			Repetitions: s.Repetitions,
		}
	}))
	r.SetSpans("laps", mapSlice(p.Laps, func(l ExerciseLap) internalrecord.Span {
		return internalrecord.Span{
			StartMillis: l.Span.Start().UnixMilli(),
			EndMillis:   l.Span.End().UnixMilli(),
			Length:      optional(l.Length, units.Length.InMeters),
		}
	}))
	if p.Route != nil {
		r.Route = mapSlice(p.Route.Locations, Location.ToInternal)
	}
}
