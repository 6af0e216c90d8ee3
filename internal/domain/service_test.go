package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/units"
)

type memRepo struct {
	rows     map[string]StoredRecord
	creates  int
	replaces int
	failWith error
}

func newMemRepo() *memRepo { return &memRepo{rows: map[string]StoredRecord{}} }

func (m *memRepo) FindByClientID(_ context.Context, tenantID, packageName string, recordType records.RecordType, clientRecordID string) (*StoredRecord, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, row := range m.rows {
		if row.TenantID == tenantID && row.PackageName == packageName && row.RecordType == recordType && row.ClientRecordID == clientRecordID {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memRepo) Create(_ context.Context, rec StoredRecord) error {
	m.creates++
	m.rows[rec.ID] = rec
	return nil
}

func (m *memRepo) Replace(_ context.Context, rec StoredRecord) error {
	m.replaces++
	m.rows[rec.ID] = rec
	return nil
}

func (m *memRepo) Get(_ context.Context, tenantID, recordID string) (*StoredRecord, error) {
	row, ok := m.rows[recordID]
	if !ok || row.TenantID != tenantID {
		return nil, nil
	}
	return &row, nil
}

func (m *memRepo) ListByType(_ context.Context, tenantID string, recordType records.RecordType, _ *Cursor, limit int) ([]StoredRecord, *Cursor, error) {
	var out []StoredRecord
	for _, row := range m.rows {
		if row.TenantID == tenantID && row.RecordType == recordType && len(out) < limit {
			out = append(out, row)
		}
	}
	return out, nil, nil
}

var (
	fixedNow = time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC)
	measured = time.Date(2024, time.May, 5, 7, 30, 0, 0, time.UTC)
)

func newTestService(repo RecordRepository) *Service {
	n := 0
	return NewService(repo,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("rec-%d", n)
		}),
	)
}

func weightRecord(t *testing.T, clientID string, version int64, grams float64) records.Record {
	t.Helper()
	opts := []records.MetadataOption{records.WithDataOrigin("com.example.scale")}
	if clientID != "" {
		opts = append(opts, records.WithClientRecordID(clientID, version))
	}
	rec, err := records.NewInstantBuilder(records.NewMetadata(opts...), measured, records.Weight{Weight: units.Grams(grams)}).
		ZoneOffset(records.OffsetHours(0)).
		Build()
	require.NoError(t, err)
	return rec
}

func TestInsertStampsStorageIdentifiers(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	stored, replay, err := svc.Insert(context.Background(), "tenant-a", weightRecord(t, "", 0, 70_000))
	require.NoError(t, err)
	assert.False(t, replay)
	assert.Equal(t, "rec-1", stored.ID)
	assert.Equal(t, records.TypeWeight, stored.RecordType)
	assert.Equal(t, measured, stored.StartTime)
	assert.Equal(t, measured, stored.EndTime)
	assert.Equal(t, "rec-1", stored.Record.Metadata().ID())
	assert.Equal(t, "rec-1", stored.Internal.Metadata.UUID)
	assert.Equal(t, fixedNow.UnixMilli(), stored.Internal.Metadata.LastModifiedTime)
	weight, ok := stored.Internal.Value("weight")
	require.True(t, ok)
	assert.Equal(t, 70000.0, weight)
	assert.Equal(t, 1, repo.creates)
}

func TestInsertIsIdempotentOnClientRecordVersion(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	first, replay, err := svc.Insert(ctx, "tenant-a", weightRecord(t, "w-1", 2, 70_000))
	require.NoError(t, err)
	require.False(t, replay)

	// same or older version replays the stored row
	for _, version := range []int64{2, 1} {
		again, replay, err := svc.Insert(ctx, "tenant-a", weightRecord(t, "w-1", version, 71_000))
		require.NoError(t, err)
		assert.True(t, replay)
		assert.Equal(t, first.ID, again.ID)
		w, _ := again.Internal.Value("weight")
		assert.Equal(t, 70000.0, w)
	}

	// newer version replaces in place
	updated, replay, err := svc.Insert(ctx, "tenant-a", weightRecord(t, "w-1", 3, 72_000))
	require.NoError(t, err)
	assert.False(t, replay)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, int64(3), updated.ClientRecordVersion)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.replaces)

	// another tenant gets its own row
	other, replay, err := svc.Insert(ctx, "tenant-b", weightRecord(t, "w-1", 2, 70_000))
	require.NoError(t, err)
	assert.False(t, replay)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestInsertPropagatesRepositoryErrors(t *testing.T) {
	repo := newMemRepo()
	repo.failWith = errors.New("db down")
	svc := newTestService(repo)

	_, _, err := svc.Insert(context.Background(), "tenant-a", weightRecord(t, "w-1", 1, 70_000))
	require.EqualError(t, err, "db down")

	_, _, err = svc.Insert(context.Background(), "tenant-a", nil)
	require.ErrorIs(t, err, ErrNilRecord)
}

func TestGetAndList(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	stored, _, err := svc.Insert(ctx, "tenant-a", weightRecord(t, "", 0, 70_000))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "tenant-a", stored.ID)
	require.NoError(t, err)
	assert.True(t, stored.Record.Equal(got.Record))

	_, err = svc.Get(ctx, "tenant-b", stored.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)

	list, next, err := svc.ListByType(ctx, "tenant-a", records.TypeWeight, nil, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Nil(t, next)
}
