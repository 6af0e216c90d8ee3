// Package events defines the payloads published when stored records change.
package events

import (
	"time"

	"example.com/healthrecords/internal/internalrecord"
)

// Event types written to the outbox.
const (
	TypeRecordInserted = "record.inserted"
	TypeRecordReplaced = "record.replaced"
)

// RecordChanged is emitted when a record is inserted or replaced by a newer
// client version. Internal omits the exercise route, which stays in storage.
type RecordChanged struct {
	RecordID            string                `json:"record_id"`
	TenantID            string                `json:"tenant_id"`
	RecordType          string                `json:"record_type"`
	PackageName         string                `json:"package_name"`
	ClientRecordID      string                `json:"client_record_id,omitempty"`
	ClientRecordVersion int64                 `json:"client_record_version"`
	StartTime           time.Time             `json:"start_time"`
	EndTime             time.Time             `json:"end_time"`
	OccurredAt          time.Time             `json:"occurred_at"`
	Internal            internalrecord.Record `json:"internal"`
}
