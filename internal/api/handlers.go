// Package api exposes HTTP handlers for the health records service.
package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gookit/validate"

	"example.com/healthrecords/internal/aggregation"
	"example.com/healthrecords/internal/auth"
	"example.com/healthrecords/internal/cache"
	"example.com/healthrecords/internal/domain"
	"example.com/healthrecords/internal/observability"
	"example.com/healthrecords/internal/persistence"
	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/validation"
)

const (
	maxBodyBytes     = 4 << 20
	defaultPageLimit = 50
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	views   cache.Views
}

// NewHandler builds a Handler. A nil views cache disables caching.
func NewHandler(service *domain.Service, views cache.Views) *Handler {
	if views == nil {
		views = cache.NewViews(0, 0)
	}
	return &Handler{service: service, views: views}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/records", h.records)
	mux.HandleFunc("/v1/records/", h.recordByID)
	mux.HandleFunc("/v1/record-types", h.recordTypes)
	mux.HandleFunc("/v1/aggregation-types", h.aggregationTypes)
	mux.HandleFunc("/v1/aggregation-types/", h.aggregationTypeByKey)
	mux.HandleFunc("/healthz", healthz)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.insertRecord(w, r)
	case http.MethodGet:
		h.listRecords(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) recordByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/records/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing record id")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	h.getRecord(w, r, id)
}

func (h *Handler) insertRecord(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireScope(w, r, auth.ScopeRecordsWrite)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "invalid_request", "body too large")
		return
	}

	rec, err := records.Decode(body)
	if err != nil {
		typeName := peekRecordType(body)
		if kind := validation.KindName(err); kind != "" {
			observability.RecordRejected(typeName, kind)
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Type:   "validation_failed",
				Kind:   kind,
				Detail: err.Error(),
			})
			return
		}
		observability.RecordRejected(typeName, "")
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	stored, replay, err := h.service.Insert(r.Context(), claims.TenantID, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	typeName := stored.RecordType.String()
	status := http.StatusCreated
	if replay {
		status = http.StatusOK
		observability.RecordReplayed(typeName)
	} else {
		observability.RecordAccepted(typeName)
		h.views.Invalidate(claims.TenantID, stored.ID)
	}

	writeJSON(w, status, InsertRecordResponse{
		RecordID:            stored.ID,
		RecordType:          stored.RecordType,
		ClientRecordVersion: stored.ClientRecordVersion,
		Replay:              replay,
	})
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request, id string) {
	claims, ok := requireScope(w, r, auth.ScopeRecordsRead)
	if !ok {
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "record not found")
		return
	}

	withInternal := r.URL.Query().Get("include") == "internal"
	if !withInternal {
		if cached, hit := h.views.Get(claims.TenantID, id); hit {
			writeRaw(w, http.StatusOK, cached)
			return
		}
	}

	stored, err := h.service.Get(r.Context(), claims.TenantID, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "record not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	view := toRecordView(*stored)
	if withInternal {
		view.Internal = &stored.Internal
		writeJSON(w, http.StatusOK, view)
		return
	}

	body, err := json.Marshal(view)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	h.views.Set(claims.TenantID, id, body)
	writeRaw(w, http.StatusOK, body)
}

type listQuery struct {
	RecordType string `validate:"required"`
	Limit      int    `validate:"required|min:1|max:500"`
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireScope(w, r, auth.ScopeRecordsRead)
	if !ok {
		return
	}

	q := listQuery{RecordType: r.URL.Query().Get("record_type"), Limit: defaultPageLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "limit must be an integer")
			return
		}
		q.Limit = parsed
	}
	if v := validate.Struct(&q); !v.Validate() {
		writeError(w, http.StatusBadRequest, "validation_failed", v.Errors.One())
		return
	}

	recordType, err := records.ParseRecordType(q.RecordType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	cursor, err := persistence.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid cursor")
		return
	}

	stored, next, err := h.service.ListByType(r.Context(), claims.TenantID, recordType, cursor, q.Limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]RecordView, 0, len(stored))
	for _, s := range stored {
		items = append(items, toRecordView(s))
	}
	writeJSON(w, http.StatusOK, ListRecordsResponse{
		Items:      items,
		NextCursor: persistence.EncodeCursor(next),
	})
}

func (h *Handler) recordTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := requireScope(w, r, auth.ScopeRecordsRead); !ok {
		return
	}

	all := records.AllRecordTypes()
	resp := make([]RecordTypeView, 0, len(all))
	for _, rt := range all {
		view := RecordTypeView{Name: rt, Instant: rt.IsInstant(), AggregationIDs: []aggregation.ID{}}
		for _, d := range aggregation.ForRecordType(rt) {
			view.AggregationIDs = append(view.AggregationIDs, d.ID)
		}
		resp = append(resp, view)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) aggregationTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := requireScope(w, r, auth.ScopeRecordsRead); !ok {
		return
	}

	raw := r.URL.Query().Get("record_type")
	if raw == "" {
		writeJSON(w, http.StatusOK, aggregation.All())
		return
	}
	recordType, err := records.ParseRecordType(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, aggregation.ForRecordType(recordType))
}

// aggregationTypeByKey resolves either a numeric id or a metric name.
func (h *Handler) aggregationTypeByKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := requireScope(w, r, auth.ScopeRecordsRead); !ok {
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/v1/aggregation-types/")
	var (
		desc  aggregation.Descriptor
		found bool
	)
	if id, err := strconv.ParseInt(key, 10, 32); err == nil {
		desc, found = aggregation.Lookup(aggregation.ID(id))
	} else {
		desc, found = aggregation.LookupName(key)
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "aggregation type not found")
		return
	}
	writeJSON(w, http.StatusOK, desc)
}

// requireScope accepts write tokens wherever read is required.
func requireScope(w http.ResponseWriter, r *http.Request, scope string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if claims.HasScope(scope) || (scope == auth.ScopeRecordsRead && claims.HasScope(auth.ScopeRecordsWrite)) {
		return claims, true
	}
	writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
	return nil, false
}

func peekRecordType(body []byte) string {
	var head struct {
		RecordType string `json:"record_type"`
	}
	if err := json.Unmarshal(body, &head); err != nil || head.RecordType == "" {
		return "unknown"
	}
	if rt, err := records.ParseRecordType(head.RecordType); err == nil {
		return rt.String()
	}
	return "unknown"
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{
		"type":   code,
		"detail": detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
