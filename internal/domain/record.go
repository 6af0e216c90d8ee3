package domain

import (
	"time"

	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/records"
)

// StoredRecord is a validated record together with the identifiers the store
// assigned to it.
type StoredRecord struct {
	ID                  string
	TenantID            string
	RecordType          records.RecordType
	PackageName         string
	ClientRecordID      string
	ClientRecordVersion int64
	StartTime           time.Time
	EndTime             time.Time
	Record              records.Record
	Internal            internalrecord.Record
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Cursor models the pagination token. Listings run newest first.
type Cursor struct {
	StartTime time.Time
	ID        string
}

// recordSpan returns the instant of an instant record or the bounds of an
// interval record.
func recordSpan(rec records.Record) (time.Time, time.Time) {
	switch r := rec.(type) {
	case records.InstantRecord:
		return r.Time(), r.Time()
	case records.IntervalRecord:
		return r.StartTime(), r.EndTime()
	default:
		return time.Time{}, time.Time{}
	}
}
