package api

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/aggregation"
	"example.com/healthrecords/internal/auth"
	"example.com/healthrecords/internal/cache"
	"example.com/healthrecords/internal/domain"
	"example.com/healthrecords/internal/observability"
	"example.com/healthrecords/internal/records"
)

type mockRepo struct {
	mu      sync.Mutex
	rows    map[string]domain.StoredRecord
	gets    int
	failGet error
}

func newMockRepo() *mockRepo { return &mockRepo{rows: map[string]domain.StoredRecord{}} }

func (m *mockRepo) FindByClientID(_ context.Context, tenantID, packageName string, recordType records.RecordType, clientRecordID string) (*domain.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.TenantID == tenantID && row.PackageName == packageName && row.RecordType == recordType && row.ClientRecordID == clientRecordID {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Create(_ context.Context, rec domain.StoredRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[rec.ID] = rec
	return nil
}

func (m *mockRepo) Replace(ctx context.Context, rec domain.StoredRecord) error {
	return m.Create(ctx, rec)
}

func (m *mockRepo) Get(_ context.Context, tenantID, recordID string) (*domain.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.failGet != nil {
		return nil, m.failGet
	}
	row, ok := m.rows[recordID]
	if !ok || row.TenantID != tenantID {
		return nil, nil
	}
	return &row, nil
}

func (m *mockRepo) ListByType(_ context.Context, tenantID string, recordType records.RecordType, cursor *domain.Cursor, limit int) ([]domain.StoredRecord, *domain.Cursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.StoredRecord
	for _, row := range m.rows {
		if row.TenantID == tenantID && row.RecordType == recordType {
			out = append(out, row)
		}
	}
	if len(out) > limit {
		last := out[limit-1]
		return out[:limit], &domain.Cursor{StartTime: last.StartTime, ID: last.ID}, nil
	}
	return out, nil, nil
}

func newTestHandler(repo *mockRepo) *Handler {
	return NewHandler(domain.NewService(repo), cache.NewViews(1, time.Minute))
}

func withClaims(req *http.Request, tenantID string, scopes ...string) *http.Request {
	set := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		set[s] = struct{}{}
	}
	return req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{
		Subject:   "tester",
		TenantID:  tenantID,
		Scopes:    set,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

const stepsBody = `{
	"record_type": "Steps",
	"metadata": {
		"data_origin": {"package_name": "com.example.walk"},
		"client_record_id": "walk-1",
		"client_record_version": 2
	},
	"start_time": "2024-05-05T07:00:00Z",
	"end_time": "2024-05-05T08:00:00Z",
	"payload": {"count": 4200}
}`

func postRecord(t *testing.T, h *Handler, tenantID, body string) (*httptest.ResponseRecorder, InsertRecordResponse) {
	t.Helper()
	req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(body)), tenantID, auth.ScopeRecordsWrite)
	rr := serve(h, req)
	var resp InsertRecordResponse
	if rr.Code < 300 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func TestInsertRecordCreatesThenReplays(t *testing.T) {
	h := newTestHandler(newMockRepo())

	rr, created := postRecord(t, h, "tenant-1", stepsBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotEmpty(t, created.RecordID)
	assert.Equal(t, records.TypeSteps, created.RecordType)
	assert.Equal(t, int64(2), created.ClientRecordVersion)
	assert.False(t, created.Replay)

	rr, replayed := postRecord(t, h, "tenant-1", stepsBody)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, replayed.Replay)
	assert.Equal(t, created.RecordID, replayed.RecordID)
}

func TestInsertRecordValidationFailures(t *testing.T) {
	h := newTestHandler(newMockRepo())

	overlapping := `{
		"record_type": "SleepSession",
		"start_time": "2024-05-04T22:00:00Z",
		"end_time": "2024-05-05T01:00:00Z",
		"payload": {"stages": [
			{"interval": {"start_time": "2024-05-04T22:00:00Z", "end_time": "2024-05-05T00:00:00Z"}, "stage": 5},
			{"interval": {"start_time": "2024-05-04T23:00:00Z", "end_time": "2024-05-05T01:00:00Z"}, "stage": 4}
		]}
	}`
	rr, _ := postRecord(t, h, "tenant-1", overlapping)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var verr ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verr))
	assert.Equal(t, "validation_failed", verr.Type)
	assert.Equal(t, "overlapping_sub_intervals", verr.Kind)

	inverted := `{"record_type": "Steps", "start_time": "2024-05-05T08:00:00Z", "end_time": "2024-05-05T07:00:00Z", "payload": {"count": 1}}`
	rr, _ = postRecord(t, h, "tenant-1", inverted)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verr))
	assert.Equal(t, "invalid_interval", verr.Kind)

	missingCount := `{"record_type": "Steps", "start_time": "2024-05-05T07:00:00Z", "end_time": "2024-05-05T08:00:00Z", "payload": {}}`
	rr, _ = postRecord(t, h, "tenant-1", missingCount)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verr))
	assert.Equal(t, "missing_field", verr.Kind)
	assert.Contains(t, verr.Detail, "count")

	rr, _ = postRecord(t, h, "tenant-1", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func persistedWatermark(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == "health_records_persistence_last_record_persisted_timestamp_seconds" {
			return family.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("persistence watermark not registered")
	return 0
}

func TestInsertRecordLeavesPersistenceWatermarkToTheRepository(t *testing.T) {
	h := newTestHandler(newMockRepo())
	observability.RecordPersisted(time.Unix(1_000, 0))

	rr, _ := postRecord(t, h, "tenant-1", stepsBody)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1_000.0, persistedWatermark(t))
}

func TestInsertRecordRequiresWriteScope(t *testing.T) {
	h := newTestHandler(newMockRepo())

	req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(stepsBody)), "tenant-1", auth.ScopeRecordsRead)
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(stepsBody))
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
}

func TestGetRecordUsesTheViewCache(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)
	_, created := postRecord(t, h, "tenant-1", stepsBody)

	get := func(tenantID, path string) *httptest.ResponseRecorder {
		return serve(h, withClaims(httptest.NewRequest(http.MethodGet, path, nil), tenantID, auth.ScopeRecordsRead))
	}

	rr := get("tenant-1", "/v1/records/"+created.RecordID)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var view map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, created.RecordID, view["record_id"])
	assert.Equal(t, "com.example.walk", view["package_name"])
	record := view["record"].(map[string]any)
	assert.Equal(t, "Steps", record["record_type"])
	assert.NotContains(t, view, "internal")

	rr = get("tenant-1", "/v1/records/"+created.RecordID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, repo.gets, "second read is served from cache")

	rr = get("tenant-1", "/v1/records/"+created.RecordID+"?include=internal")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Contains(t, view, "internal")
	assert.Equal(t, 2, repo.gets)

	assert.Equal(t, http.StatusNotFound, get("tenant-2", "/v1/records/"+created.RecordID).Code)
	assert.Equal(t, http.StatusNotFound, get("tenant-1", "/v1/records/not-a-uuid").Code)
}

func TestGetRecordPropagatesStorageErrors(t *testing.T) {
	repo := newMockRepo()
	repo.failGet = errors.New("db down")
	h := newTestHandler(repo)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/records/0b6b1a2e-1111-4c1e-9a57-3d2f4a9c0001", nil), "tenant-1", auth.ScopeRecordsWrite)
	assert.Equal(t, http.StatusInternalServerError, serve(h, req).Code)
}

func TestListRecords(t *testing.T) {
	h := newTestHandler(newMockRepo())
	postRecord(t, h, "tenant-1", stepsBody)
	postRecord(t, h, "tenant-1", strings.Replace(stepsBody, "walk-1", "walk-2", 1))

	list := func(query string) *httptest.ResponseRecorder {
		return serve(h, withClaims(httptest.NewRequest(http.MethodGet, "/v1/records"+query, nil), "tenant-1", auth.ScopeRecordsRead))
	}

	rr := list("?record_type=Steps&limit=1")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp struct {
		Items      []map[string]any `json:"items"`
		NextCursor string           `json:"next_cursor"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.NotEmpty(t, resp.NextCursor)

	rr = list("?record_type=Weight")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)

	for _, bad := range []string{"", "?record_type=Mood", "?record_type=Steps&limit=0", "?record_type=Steps&limit=x", "?record_type=Steps&limit=501", "?record_type=Steps&cursor=***"} {
		assert.Equal(t, http.StatusBadRequest, list(bad).Code, bad)
	}

	tampered := base64.RawURLEncoding.EncodeToString([]byte("2024-05-05T07:00:00Z|not-a-uuid"))
	assert.Equal(t, http.StatusBadRequest, list("?record_type=Steps&cursor="+tampered).Code)
}

func TestAggregationTypes(t *testing.T) {
	h := newTestHandler(newMockRepo())
	get := func(path string) *httptest.ResponseRecorder {
		return serve(h, withClaims(httptest.NewRequest(http.MethodGet, path, nil), "tenant-1", auth.ScopeRecordsRead))
	}

	rr := get("/v1/aggregation-types")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, len(aggregation.All()))

	rr = get("/v1/aggregation-types?record_type=ActiveCaloriesBurned")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	require.Len(t, all, 2)

	rr = get("/v1/aggregation-types/16")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":16,"name":"heart_rate_measurements_count","operation":"count","record_types":["HeartRate"],"result_type":"int64"}`, rr.Body.String())

	rr = get("/v1/aggregation-types/HEART_RATE_MEASUREMENTS_COUNT")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, http.StatusNotFound, get("/v1/aggregation-types/9999").Code)
	assert.Equal(t, http.StatusBadRequest, get("/v1/aggregation-types?record_type=Mood").Code)
}

func TestRecordTypes(t *testing.T) {
	h := newTestHandler(newMockRepo())
	rr := serve(h, withClaims(httptest.NewRequest(http.MethodGet, "/v1/record-types", nil), "tenant-1", auth.ScopeRecordsRead))
	require.Equal(t, http.StatusOK, rr.Code)

	var types []RecordTypeView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &types))
	require.Len(t, types, len(records.AllRecordTypes()))
	for _, v := range types {
		if v.Name == records.TypeWeight {
			assert.True(t, v.Instant)
			assert.NotEmpty(t, v.AggregationIDs)
		}
	}
}

func TestHealthzAndMethodNotAllowed(t *testing.T) {
	h := newTestHandler(newMockRepo())
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	req := withClaims(httptest.NewRequest(http.MethodDelete, "/v1/records", nil), "tenant-1", auth.ScopeRecordsWrite)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, req).Code)
}
