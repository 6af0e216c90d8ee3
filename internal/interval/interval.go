// Package interval models time spans and the canonicalization rules applied to
// collections of nested spans and timestamped samples inside a record.
package interval

import (
	"time"

	json "github.com/goccy/go-json"

	"example.com/healthrecords/internal/validation"
)

// TimeInterval is an immutable [start, end] pair with end >= start.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

// New constructs a TimeInterval, rejecting end before start. Equal endpoints
// form a valid zero-length interval.
func New(start, end time.Time) (TimeInterval, error) {
	if end.Before(start) {
		return TimeInterval{}, validation.InvalidInterval("interval", start, end)
	}
	return TimeInterval{start: start, end: end}, nil
}

// MustNew is New for literals known to be valid; it panics otherwise.
func MustNew(start, end time.Time) TimeInterval {
	ti, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return ti
}

func (ti TimeInterval) Start() time.Time { return ti.start }
func (ti TimeInterval) End() time.Time   { return ti.end }

// Duration returns end - start.
func (ti TimeInterval) Duration() time.Duration { return ti.end.Sub(ti.start) }

// Contains reports whether t lies within [start, end].
func (ti TimeInterval) Contains(t time.Time) bool {
	return !t.Before(ti.start) && !t.After(ti.end)
}

// UTC returns the interval with both endpoints converted to UTC.
func (ti TimeInterval) UTC() TimeInterval {
	return TimeInterval{start: ti.start.UTC(), end: ti.end.UTC()}
}

type intervalJSON struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (ti TimeInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{StartTime: ti.start, EndTime: ti.end})
}

// UnmarshalJSON decodes and re-validates the interval.
func (ti *TimeInterval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := New(raw.StartTime, raw.EndTime)
	if err != nil {
		return err
	}
	*ti = parsed
	return nil
}
