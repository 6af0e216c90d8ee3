package outbox

import "example.com/healthrecords/internal/events"

const recordChangedSchema = `{
  "type": "object",
  "title": "RecordChanged",
  "properties": {
    "record_id": {"type": "string"},
    "tenant_id": {"type": "string"},
    "record_type": {"type": "string"},
    "package_name": {"type": "string"},
    "client_record_id": {"type": "string"},
    "client_record_version": {"type": "integer"},
    "start_time": {"type": "string", "format": "date-time"},
    "end_time": {"type": "string", "format": "date-time"},
    "occurred_at": {"type": "string", "format": "date-time"},
    "internal": {"type": "object"}
  },
  "required": ["record_id", "tenant_id", "record_type", "package_name", "client_record_version", "start_time", "end_time", "occurred_at", "internal"],
  "additionalProperties": false
}`

// SchemaCatalogEntry maps event type to schema definition.
type SchemaCatalogEntry struct {
	Schema string
}

var schemaCatalog = map[string]SchemaCatalogEntry{
	events.TypeRecordInserted: {Schema: recordChangedSchema},
	events.TypeRecordReplaced: {Schema: recordChangedSchema},
}
