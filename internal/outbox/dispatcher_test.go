package outbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/events"
)

type stubWriter struct {
	byTopic map[string][]kafka.Message
	err     error
}

func (s *stubWriter) WriteMessages(_ context.Context, topic string, msgs ...kafka.Message) error {
	if s.err != nil {
		return s.err
	}
	if s.byTopic == nil {
		s.byTopic = map[string][]kafka.Message{}
	}
	s.byTopic[topic] = append(s.byTopic[topic], msgs...)
	return nil
}

type stubRegistry struct {
	calls atomic.Int32
	id    int
	err   error
}

func (s *stubRegistry) EnsureSchema(context.Context, string, string) (int, error) {
	s.calls.Add(1)
	return s.id, s.err
}

func testMessage(id int64, eventType string) Message {
	return Message{
		EventID:       id,
		TenantID:      "tenant-a",
		AggregateType: "health_record",
		AggregateID:   "rec-1",
		EventType:     eventType,
		Topic:         "health_record_events",
		SchemaSubject: "health_record_events-value",
		PartitionKey:  "tenant-a:Steps",
		Payload:       json.RawMessage(`{"record_id":"rec-1"}`),
	}
}

func TestDeliverFramesMessagesAndCachesSchemaIDs(t *testing.T) {
	writer := &stubWriter{}
	registry := &stubRegistry{id: 42}
	d := NewDispatcher(nil, writer, registry, time.Second, 10)
	fixed := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }

	err := d.deliver(context.Background(), []Message{
		testMessage(1, events.TypeRecordInserted),
		testMessage(2, events.TypeRecordReplaced),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), registry.calls.Load(), "both event types share one schema")

	sent := writer.byTopic["health_record_events"]
	require.Len(t, sent, 2)
	assert.Equal(t, []byte("tenant-a:Steps"), sent[0].Key)
	assert.Equal(t, fixed, sent[0].Time)
	assert.Equal(t, "event_type", sent[1].Headers[0].Key)
	assert.Equal(t, []byte(events.TypeRecordReplaced), sent[1].Headers[0].Value)
	require.Len(t, sent[1].Headers, 3)
	assert.Equal(t, "tenant_id", sent[1].Headers[1].Key)
	assert.Equal(t, []byte("tenant-a"), sent[1].Headers[1].Value)
	assert.Equal(t, []byte("health_record_events-value"), sent[1].Headers[2].Value)

	schemaID, payload, err := DecodeWireFormat(sent[0].Value)
	require.NoError(t, err)
	assert.Equal(t, 42, schemaID)
	assert.JSONEq(t, `{"record_id":"rec-1"}`, string(payload))
}

func TestDeliverFailures(t *testing.T) {
	d := NewDispatcher(nil, &stubWriter{}, &stubRegistry{id: 1}, time.Second, 10)
	err := d.deliver(context.Background(), []Message{testMessage(1, "record.deleted")})
	require.ErrorContains(t, err, "no schema metadata")

	d = NewDispatcher(nil, &stubWriter{}, &stubRegistry{err: errors.New("registry down")}, time.Second, 10)
	err = d.deliver(context.Background(), []Message{testMessage(1, events.TypeRecordInserted)})
	require.EqualError(t, err, "registry down")

	d = NewDispatcher(nil, &stubWriter{err: kafka.LeaderNotAvailable}, &stubRegistry{id: 1}, time.Second, 10)
	err = d.deliver(context.Background(), []Message{testMessage(1, events.TypeRecordInserted)})
	require.ErrorIs(t, err, kafka.LeaderNotAvailable)
}

func TestWireFormat(t *testing.T) {
	frame := encodeWireFormat(7, []byte("{}"))
	assert.Equal(t, []byte{0, 0, 0, 0, 7, '{', '}'}, frame)

	_, _, err := DecodeWireFormat([]byte{1, 0, 0, 0, 7})
	require.ErrorIs(t, err, ErrInvalidFrame)
	_, _, err = DecodeWireFormat([]byte{0, 0})
	require.ErrorIs(t, err, ErrInvalidFrame)
}

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, time.Minute, backoffDelay(time.Minute, 1))
	assert.Equal(t, 4*time.Minute, backoffDelay(time.Minute, 3))
	assert.Equal(t, time.Hour, backoffDelay(time.Minute, 7))
	assert.Equal(t, time.Hour, backoffDelay(time.Minute, 64))
	assert.Equal(t, time.Minute, backoffDelay(time.Minute, 0))
}

func TestSchemaRegistryRegistersMissingSubjects(t *testing.T) {
	var registered atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/subjects/health_record_events-value/versions/latest":
			if !registered.Load() {
				http.Error(w, `{"error_code":40401}`, http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`{"id":9,"version":1}`))
		case r.Method == http.MethodPost && r.URL.Path == "/subjects/health_record_events-value/versions":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "JSON", body["schemaType"])
			registered.Store(true)
			_, _ = w.Write([]byte(`{"id":9}`))
		default:
			http.Error(w, "unexpected", http.StatusTeapot)
		}
	}))
	defer srv.Close()

	client := NewSchemaRegistryClient(srv.URL + "/")
	id, err := client.EnsureSchema(context.Background(), "health_record_events-value", recordChangedSchema)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.True(t, registered.Load())

	id, err = client.EnsureSchema(context.Background(), "health_record_events-value", recordChangedSchema)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}

func TestSchemaRegistrySurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewSchemaRegistryClient(srv.URL).EnsureSchema(context.Background(), "s", "{}")
	require.ErrorContains(t, err, "schema registry error (500)")
}

func TestSchemaCatalogSchemasAreValidJSON(t *testing.T) {
	for eventType, entry := range schemaCatalog {
		assert.True(t, json.Valid([]byte(entry.Schema)), eventType)
	}
}
