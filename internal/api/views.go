package api

import (
	"time"

	"example.com/healthrecords/internal/aggregation"
	"example.com/healthrecords/internal/domain"
	"example.com/healthrecords/internal/internalrecord"
	"example.com/healthrecords/internal/records"
)

// InsertRecordResponse describes the response body for POST /v1/records.
type InsertRecordResponse struct {
	RecordID            string             `json:"record_id"`
	RecordType          records.RecordType `json:"record_type"`
	ClientRecordVersion int64              `json:"client_record_version"`
	Replay              bool               `json:"idempotent_replay"`
}

// ValidationErrorResponse is returned with 422 when a record fails validation.
// Kind is the snake_case name of the rejection.
type ValidationErrorResponse struct {
	Type   string `json:"type"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// RecordView exposes a stored record together with its storage bookkeeping.
type RecordView struct {
	RecordID            string                 `json:"record_id"`
	RecordType          records.RecordType     `json:"record_type"`
	PackageName         string                 `json:"package_name"`
	ClientRecordID      string                 `json:"client_record_id,omitempty"`
	ClientRecordVersion int64                  `json:"client_record_version"`
	StartTime           time.Time              `json:"start_time"`
	EndTime             time.Time              `json:"end_time"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
	Record              records.Record         `json:"record"`
	Internal            *internalrecord.Record `json:"internal,omitempty"`
}

// ListRecordsResponse packages list results.
type ListRecordsResponse struct {
	Items      []RecordView `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// RecordTypeView lists a record type with the aggregations it feeds.
type RecordTypeView struct {
	Name           records.RecordType `json:"name"`
	Instant        bool               `json:"instant"`
	AggregationIDs []aggregation.ID   `json:"aggregation_ids"`
}

func toRecordView(s domain.StoredRecord) RecordView {
	return RecordView{
		RecordID:            s.ID,
		RecordType:          s.RecordType,
		PackageName:         s.PackageName,
		ClientRecordID:      s.ClientRecordID,
		ClientRecordVersion: s.ClientRecordVersion,
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
		Record:              s.Record,
	}
}
