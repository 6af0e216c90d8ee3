package records

import (
	"time"

	"example.com/healthrecords/internal/validation"
)

const maxZoneOffsetSeconds = 18 * 60 * 60

// ZoneOffset is a UTC offset in whole seconds.
type ZoneOffset int32

// OffsetHours returns a ZoneOffset of h hours.
func OffsetHours(h int) ZoneOffset { return ZoneOffset(h * 3600) }

// OffsetOf returns the offset t carries in its own location.
func OffsetOf(t time.Time) ZoneOffset {
	_, offset := t.Zone()
	return ZoneOffset(offset)
}

// LocalOffsetAt returns the local zone offset in effect at t.
func LocalOffsetAt(t time.Time) ZoneOffset {
	return OffsetOf(t.In(time.Local))
}

// Seconds returns the offset in seconds.
func (z ZoneOffset) Seconds() int32 { return int32(z) }

// Location returns a fixed zone for the offset.
func (z ZoneOffset) Location() *time.Location {
	return time.FixedZone("", int(z))
}

func (z ZoneOffset) validate(field string) error {
	return validation.RequireInRange(int32(z), -maxZoneOffsetSeconds, maxZoneOffsetSeconds, field)
}

func resolveOffset(explicit *ZoneOffset, at time.Time) ZoneOffset {
	if explicit != nil {
		return *explicit
	}
	return LocalOffsetAt(at)
}
