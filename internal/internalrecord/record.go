// Package internalrecord defines the primitive record shape handed to storage
// and transport: epoch millis instead of instants, offsets in seconds and bare
// canonical numbers instead of unit wrappers. Absent optional fields are absent
// map keys, never zero values.
package internalrecord

// Metadata mirrors the public metadata with primitive fields.
type Metadata struct {
	UUID                string  `json:"uuid"`
	PackageName         string  `json:"package_name"`
	LastModifiedTime    int64   `json:"last_modified_time"`
	ClientRecordID      *string `json:"client_record_id,omitempty"`
	ClientRecordVersion int64   `json:"client_record_version"`
	Manufacturer        string  `json:"manufacturer,omitempty"`
	Model               string  `json:"model,omitempty"`
	DeviceType          int     `json:"device_type"`
	RecordingMethod     int     `json:"recording_method"`
}

// Instant carries the point in time of an instant record.
type Instant struct {
	TimeMillis        int64 `json:"time_millis"`
	ZoneOffsetSeconds int32 `json:"zone_offset_seconds"`
}

// Interval carries the span of an interval record.
type Interval struct {
	StartMillis            int64 `json:"start_millis"`
	StartZoneOffsetSeconds int32 `json:"start_zone_offset_seconds"`
	EndMillis              int64 `json:"end_millis"`
	EndZoneOffsetSeconds   int32 `json:"end_zone_offset_seconds"`
}

// Sample is one timestamped reading.
type Sample struct {
	TimeMillis int64   `json:"time_millis"`
	Value      float64 `json:"value"`
}

// Span is one nested interval (sleep stage, exercise segment or lap).
type Span struct {
	StartMillis int64    `json:"start_millis"`
	EndMillis   int64    `json:"end_millis"`
	Type        int      `json:"type"`
	Repetitions int64    `json:"repetitions,omitempty"`
	Length      *float64 `json:"length,omitempty"`
}

// Location is one exercise route point.
type Location struct {
	TimeMillis         int64    `json:"time_millis"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	HorizontalAccuracy *float64 `json:"horizontal_accuracy,omitempty"`
	VerticalAccuracy   *float64 `json:"vertical_accuracy,omitempty"`
	Altitude           *float64 `json:"altitude,omitempty"`
}

// Record is the internal form of any public record. Exactly one of Instant
// and Interval is set.
type Record struct {
	RecordType int                 `json:"record_type"`
	Metadata   Metadata            `json:"metadata"`
	Instant    *Instant            `json:"instant,omitempty"`
	Interval   *Interval           `json:"interval,omitempty"`
	Values     map[string]float64  `json:"values,omitempty"`
	Ints       map[string]int64    `json:"ints,omitempty"`
	Strings    map[string]string   `json:"strings,omitempty"`
	Samples    map[string][]Sample `json:"samples,omitempty"`
	Spans      map[string][]Span   `json:"spans,omitempty"`
	Route      []Location          `json:"route,omitempty"`
}

// SetValue stores a canonical number under key.
func (r *Record) SetValue(key string, v float64) {
	if r.Values == nil {
		r.Values = make(map[string]float64)
	}
	r.Values[key] = v
}

// SetOptionalValue stores *v under key when v is non-nil.
func (r *Record) SetOptionalValue(key string, v *float64) {
	if v != nil {
		r.SetValue(key, *v)
	}
}

// SetInt stores an integer or enum value under key.
func (r *Record) SetInt(key string, v int64) {
	if r.Ints == nil {
		r.Ints = make(map[string]int64)
	}
	r.Ints[key] = v
}

// SetOptionalString stores *v under key when v is non-nil.
func (r *Record) SetOptionalString(key string, v *string) {
	if v == nil {
		return
	}
	if r.Strings == nil {
		r.Strings = make(map[string]string)
	}
	r.Strings[key] = *v
}

// SetSamples stores a sample series under key. Empty series are kept so that
// readers can tell an empty series from an absent one.
func (r *Record) SetSamples(key string, samples []Sample) {
	if r.Samples == nil {
		r.Samples = make(map[string][]Sample)
	}
	r.Samples[key] = samples
}

// SetSpans stores a nested interval collection under key.
func (r *Record) SetSpans(key string, spans []Span) {
	if r.Spans == nil {
		r.Spans = make(map[string][]Span)
	}
	r.Spans[key] = spans
}

// Value returns the canonical number stored under key.
func (r Record) Value(key string) (float64, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Int returns the integer stored under key.
func (r Record) Int(key string) (int64, bool) {
	v, ok := r.Ints[key]
	return v, ok
}

// Text returns the string stored under key.
func (r Record) Text(key string) (string, bool) {
	v, ok := r.Strings[key]
	return v, ok
}

// StartMillis returns the record's instant or interval start.
func (r Record) StartMillis() int64 {
	if r.Instant != nil {
		return r.Instant.TimeMillis
	}
	if r.Interval != nil {
		return r.Interval.StartMillis
	}
	return 0
}
