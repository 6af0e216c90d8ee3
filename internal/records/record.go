// Package records holds the catalog of health records. Each record is an
// immutable value produced by a builder that runs the shared validation
// pipeline, and converts one-way into an internalrecord.Record.
package records

import (
	"bytes"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"

	"example.com/healthrecords/internal/internalrecord"
)

// Record is implemented only by InstantRecord and IntervalRecord.
type Record interface {
	RecordType() RecordType
	Metadata() Metadata
	ToInternal() internalrecord.Record
	// Equal reports structural equality. Records of different types are never equal.
	Equal(other Record) bool
	Hash() uint64
	MarshalJSON() ([]byte, error)
	isRecord()
}

// Payload is the type-specific body of a record.
type Payload interface {
	RecordType() RecordType
	schema(s span) schema
	normalize() Payload
	fill(r *internalrecord.Record)
}

// InstantPayload is a payload of a record taken at a single instant.
type InstantPayload interface {
	Payload
	instant()
}

// IntervalPayload is a payload of a record covering a span of time.
type IntervalPayload interface {
	Payload
	interval()
}

type span struct {
	start time.Time
	end   time.Time
}

// InstantRecord is a record describing a single point in time.
type InstantRecord struct {
	metadata   Metadata
	time       time.Time
	zoneOffset ZoneOffset
	payload    InstantPayload
}

func (InstantRecord) isRecord() {}

func (r InstantRecord) RecordType() RecordType {
	if r.payload == nil {
		return TypeUnknown
	}
	return r.payload.RecordType()
}

func (r InstantRecord) Metadata() Metadata     { return r.metadata.normalize() }
func (r InstantRecord) Time() time.Time        { return r.time }
func (r InstantRecord) ZoneOffset() ZoneOffset { return r.zoneOffset }

// Payload returns a copy of the record's payload.
func (r InstantRecord) Payload() InstantPayload {
	if r.payload == nil {
		return nil
	}
	return r.payload.normalize().(InstantPayload)
}

// ToInternal converts the record into its primitive form.
func (r InstantRecord) ToInternal() internalrecord.Record {
	out := internalrecord.Record{
		RecordType: int(r.RecordType()),
		Metadata:   r.metadata.toInternal(),
		Instant: &internalrecord.Instant{
			TimeMillis:        r.time.UnixMilli(),
			ZoneOffsetSeconds: r.zoneOffset.Seconds(),
		},
	}
	if r.payload != nil {
		r.payload.fill(&out)
	}
	return out
}

func (r InstantRecord) Equal(other Record) bool { return equalRecords(r, other) }
func (r InstantRecord) Hash() uint64            { return hashRecord(r) }

func (r InstantRecord) MarshalJSON() ([]byte, error) {
	payload, err := marshalPayload(r.payload)
	if err != nil {
		return nil, err
	}
	offset := r.zoneOffset
	at := r.time
	return json.Marshal(envelope{
		RecordType: r.RecordType(),
		Metadata:   r.metadata,
		Time:       &at,
		ZoneOffset: &offset,
		Payload:    payload,
	})
}

// IntervalRecord is a record covering [start, end].
type IntervalRecord struct {
	metadata        Metadata
	start           time.Time
	startZoneOffset ZoneOffset
	end             time.Time
	endZoneOffset   ZoneOffset
	payload         IntervalPayload
}

func (IntervalRecord) isRecord() {}

func (r IntervalRecord) RecordType() RecordType {
	if r.payload == nil {
		return TypeUnknown
	}
	return r.payload.RecordType()
}

func (r IntervalRecord) Metadata() Metadata          { return r.metadata.normalize() }
func (r IntervalRecord) StartTime() time.Time        { return r.start }
func (r IntervalRecord) EndTime() time.Time          { return r.end }
func (r IntervalRecord) StartZoneOffset() ZoneOffset { return r.startZoneOffset }
func (r IntervalRecord) EndZoneOffset() ZoneOffset   { return r.endZoneOffset }

// Payload returns a copy of the record's payload.
func (r IntervalRecord) Payload() IntervalPayload {
	if r.payload == nil {
		return nil
	}
	return r.payload.normalize().(IntervalPayload)
}

// ToInternal converts the record into its primitive form.
func (r IntervalRecord) ToInternal() internalrecord.Record {
	out := internalrecord.Record{
		RecordType: int(r.RecordType()),
		Metadata:   r.metadata.toInternal(),
		Interval: &internalrecord.Interval{
			StartMillis:            r.start.UnixMilli(),
			StartZoneOffsetSeconds: r.startZoneOffset.Seconds(),
			EndMillis:              r.end.UnixMilli(),
			EndZoneOffsetSeconds:   r.endZoneOffset.Seconds(),
		},
	}
	if r.payload != nil {
		r.payload.fill(&out)
	}
	return out
}

func (r IntervalRecord) Equal(other Record) bool { return equalRecords(r, other) }
func (r IntervalRecord) Hash() uint64            { return hashRecord(r) }

func (r IntervalRecord) MarshalJSON() ([]byte, error) {
	payload, err := marshalPayload(r.payload)
	if err != nil {
		return nil, err
	}
	start, end := r.start, r.end
	startOffset, endOffset := r.startZoneOffset, r.endZoneOffset
	return json.Marshal(envelope{
		RecordType:      r.RecordType(),
		Metadata:        r.metadata,
		StartTime:       &start,
		StartZoneOffset: &startOffset,
		EndTime:         &end,
		EndZoneOffset:   &endOffset,
		Payload:         payload,
	})
}

// envelope is the JSON shape shared by both record kinds.
type envelope struct {
	RecordType      RecordType      `json:"record_type"`
	Metadata        Metadata        `json:"metadata"`
	Time            *time.Time      `json:"time,omitempty"`
	ZoneOffset      *ZoneOffset     `json:"zone_offset,omitempty"`
	StartTime       *time.Time      `json:"start_time,omitempty"`
	StartZoneOffset *ZoneOffset     `json:"start_zone_offset,omitempty"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	EndZoneOffset   *ZoneOffset     `json:"end_zone_offset,omitempty"`
	Payload         json.RawMessage `json:"payload"`
}

// Stamp returns a copy of r carrying the id and modification time assigned by
// storage. Nothing else changes and no validation runs.
func Stamp(r Record, id string, lastModified time.Time) Record {
	switch v := r.(type) {
	case InstantRecord:
		v.metadata = v.metadata.stamp(id, lastModified)
		return v
	case IntervalRecord:
		v.metadata = v.metadata.stamp(id, lastModified)
		return v
	default:
		return r
	}
}

func marshalPayload(p Payload) (json.RawMessage, error) {
	if p == nil {
		return json.RawMessage("null"), nil
	}
	return json.Marshal(p)
}

// Records holding non-finite numbers cannot be encoded; they are never equal
// to anything and hash to zero. Only BuildUnchecked can produce them.
func canonical(r Record) ([]byte, bool) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, false
	}
	return data, true
}

func equalRecords(a, b Record) bool {
	if b == nil {
		return false
	}
	left, ok := canonical(a)
	if !ok {
		return false
	}
	right, ok := canonical(b)
	if !ok {
		return false
	}
	return bytes.Equal(left, right)
}

func hashRecord(r Record) uint64 {
	data, ok := canonical(r)
	if !ok {
		return 0
	}
	return xxhash.Sum64(data)
}
