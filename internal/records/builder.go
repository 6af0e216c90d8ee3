package records

import (
	"time"

	"example.com/healthrecords/internal/interval"
	"example.com/healthrecords/internal/validation"
)

// now is the clock used for the future-timestamp check.
var now = time.Now

// schema is the rule set a payload contributes to the build pipeline. Groups
// are evaluated in field order and the first failure wins.
type schema struct {
	required []error
	rules    []error
	holders  []error
	samples  []error
}

func runPipeline(required, base []error, s schema) error {
	for _, group := range [][]error{required, s.required, base, s.rules, s.holders, s.samples} {
		if err := validation.FirstError(group...); err != nil {
			return err
		}
	}
	return nil
}

func utc(t time.Time) time.Time { return t.Round(0).UTC() }

func notInFuture(field string, at time.Time) error {
	if at.After(now()) {
		return validation.FutureTimestamp(field, at)
	}
	return nil
}

// InstantBuilder assembles an InstantRecord. It is not safe for concurrent use.
type InstantBuilder struct {
	metadata   Metadata
	time       time.Time
	zoneOffset *ZoneOffset
	payload    InstantPayload
}

// NewInstantBuilder starts a record at the given instant.
func NewInstantBuilder(metadata Metadata, at time.Time, payload InstantPayload) *InstantBuilder {
	return &InstantBuilder{metadata: metadata, time: at, payload: payload}
}

// ZoneOffset sets the offset in effect at the record's instant. When unset,
// the local offset at that instant is used.
func (b *InstantBuilder) ZoneOffset(z ZoneOffset) *InstantBuilder {
	b.zoneOffset = &z
	return b
}

func (b *InstantBuilder) assemble() InstantRecord {
	rec := InstantRecord{
		metadata:   b.metadata.normalize(),
		time:       utc(b.time),
		zoneOffset: resolveOffset(b.zoneOffset, b.time),
	}
	if b.payload != nil {
		rec.payload = b.payload.normalize().(InstantPayload)
	}
	return rec
}

// Build validates the configured fields and returns the record, or the first
// rule violation.
func (b *InstantBuilder) Build() (InstantRecord, error) {
	rec := b.assemble()
	var s schema
	if rec.payload != nil {
		s = rec.payload.schema(span{start: rec.time, end: rec.time})
	}
	required := []error{
		validation.RequirePresent(!b.time.IsZero(), "time"),
		validation.RequirePresent(b.payload != nil, "payload"),
	}
	base := []error{
		notInFuture("time", rec.time),
		rec.zoneOffset.validate("zoneOffset"),
		rec.metadata.validate(),
	}
	if err := runPipeline(required, base, s); err != nil {
		return InstantRecord{}, err
	}
	return rec, nil
}

// BuildUnchecked returns the record without running any validation. It is
// meant for rehydrating records that were validated when first written.
func (b *InstantBuilder) BuildUnchecked() InstantRecord {
	return b.assemble()
}

// IntervalBuilder assembles an IntervalRecord. It is not safe for concurrent use.
type IntervalBuilder struct {
	metadata        Metadata
	start           time.Time
	end             time.Time
	startZoneOffset *ZoneOffset
	endZoneOffset   *ZoneOffset
	payload         IntervalPayload
}

// NewIntervalBuilder starts a record spanning [start, end].
func NewIntervalBuilder(metadata Metadata, start, end time.Time, payload IntervalPayload) *IntervalBuilder {
	return &IntervalBuilder{metadata: metadata, start: start, end: end, payload: payload}
}

// StartZoneOffset sets the offset in effect at start.
func (b *IntervalBuilder) StartZoneOffset(z ZoneOffset) *IntervalBuilder {
	b.startZoneOffset = &z
	return b
}

// EndZoneOffset sets the offset in effect at end.
func (b *IntervalBuilder) EndZoneOffset(z ZoneOffset) *IntervalBuilder {
	b.endZoneOffset = &z
	return b
}

func (b *IntervalBuilder) assemble() IntervalRecord {
	rec := IntervalRecord{
		metadata:        b.metadata.normalize(),
		start:           utc(b.start),
		startZoneOffset: resolveOffset(b.startZoneOffset, b.start),
		end:             utc(b.end),
		endZoneOffset:   resolveOffset(b.endZoneOffset, b.end),
	}
	if b.payload != nil {
		rec.payload = b.payload.normalize().(IntervalPayload)
	}
	return rec
}

// Build validates the configured fields and returns the record, or the first
// rule violation.
func (b *IntervalBuilder) Build() (IntervalRecord, error) {
	rec := b.assemble()
	var s schema
	if rec.payload != nil {
		s = rec.payload.schema(span{start: rec.start, end: rec.end})
	}
	required := []error{
		validation.RequirePresent(!b.start.IsZero(), "startTime"),
		validation.RequirePresent(!b.end.IsZero(), "endTime"),
		validation.RequirePresent(b.payload != nil, "payload"),
	}
	_, spanErr := interval.New(rec.start, rec.end)
	base := []error{
		notInFuture("startTime", rec.start),
		spanErr,
		rec.startZoneOffset.validate("startZoneOffset"),
		rec.endZoneOffset.validate("endZoneOffset"),
		rec.metadata.validate(),
	}
	if err := runPipeline(required, base, s); err != nil {
		return IntervalRecord{}, err
	}
	return rec, nil
}

// BuildUnchecked returns the record without running any validation. It is
// meant for rehydrating records that were validated when first written.
func (b *IntervalBuilder) BuildUnchecked() IntervalRecord {
	return b.assemble()
}
