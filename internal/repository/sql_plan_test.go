package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/testutil"
)

// captureObserver records every store call event for assertions.
type captureObserver struct {
	events []CallEvent
}

func (o *captureObserver) OnStoreCall(event CallEvent) {
	o.events = append(o.events, event)
}

func newSQLStore(t *testing.T) (*SQLPlanStore, *captureObserver) {
	t.Helper()
	obs := &captureObserver{}
	return NewSQLPlanStore(testutil.NewTestDB(t), "sqlite", obs), obs
}

func TestSQLPlanStore_InsertAndFindByKey(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	record := testutil.NewTestRecord()
	id, err := store.Insert(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	found, err := store.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, *record, found.Record)
}

func TestSQLPlanStore_FindByKey_Absent(t *testing.T) {
	store, obs := newSQLStore(t)

	found, err := store.FindByKey(context.Background(), domain.NaturalKey{
		PlanName: "Nowhere", SpecLevel: "Base", Subdivision: "Nothing",
	})
	require.NoError(t, err)
	assert.Nil(t, found)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "sql", obs.events[0].Backend)
	assert.Equal(t, "find_by_key", obs.events[0].Op)
	assert.NoError(t, obs.events[0].Err)
}

func TestSQLPlanStore_FindByKey_CaseSensitive(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	record := testutil.NewTestRecord()
	_, err := store.Insert(ctx, record)
	require.NoError(t, err)

	key := record.Key()
	key.Subdivision = "cedar creek"
	found, err := store.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLPlanStore_Insert_DuplicateKey(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, testutil.NewTestRecord())
	require.NoError(t, err)

	_, err = store.Insert(ctx, testutil.NewTestRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting plan")
}

func TestSQLPlanStore_Insert_DistinctKeys(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, testutil.NewTestRecord())
	require.NoError(t, err)

	_, err = store.Insert(ctx, testutil.NewTestRecord(testutil.WithSubdivision("Stone Bridge")))
	require.NoError(t, err)

	_, err = store.Insert(ctx, testutil.NewTestRecord(testutil.WithSpecLevel("Elite")))
	require.NoError(t, err)
}

func TestSQLPlanStore_Update_RewritesNonKeyFieldsOnly(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	record := testutil.NewTestRecord()
	id, err := store.Insert(ctx, record)
	require.NoError(t, err)

	changed := *record
	changed.ClientName = "Dream Finders"
	changed.Bedrooms = 4
	changed.Bathrooms = 3.5
	changed.LivingArea = 2100
	require.NoError(t, store.Update(ctx, id, &changed))

	found, err := store.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Dream Finders", found.Record.ClientName)
	assert.Equal(t, 4, found.Record.Bedrooms)
	assert.Equal(t, 3.5, found.Record.Bathrooms)
	assert.Equal(t, 2100, found.Record.LivingArea)

	// key columns unchanged
	assert.Equal(t, record.PlanName, found.Record.PlanName)
	assert.Equal(t, record.SpecLevel, found.Record.SpecLevel)
	assert.Equal(t, record.ClientSubdivision, found.Record.ClientSubdivision)
}

func TestSQLPlanStore_Update_Idempotent(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	record := testutil.NewTestRecord()
	id, err := store.Insert(ctx, record)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, record))
	first, err := store.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, record))
	second, err := store.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	assert.Equal(t, first.Record, second.Record)
	assert.Equal(t, first.ID, second.ID)
}

func TestSQLPlanStore_ObserverSeesMutations(t *testing.T) {
	store, obs := newSQLStore(t)
	ctx := context.Background()

	record := testutil.NewTestRecord()
	id, err := store.Insert(ctx, record)
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, id, record))

	require.Len(t, obs.events, 2)
	assert.Equal(t, "insert", obs.events[0].Op)
	assert.Equal(t, "update", obs.events[1].Op)
	for _, e := range obs.events {
		assert.Equal(t, "sql", e.Backend)
		assert.GreaterOrEqual(t, e.LatencyMs, int64(0))
	}
}

func TestSQLPlanStore_Backend(t *testing.T) {
	store, _ := newSQLStore(t)
	assert.Equal(t, "sql", store.Backend())
}

func TestRebind(t *testing.T) {
	query := "SELECT 1 FROM plans WHERE plan_name = ? AND spec_level = ?"

	assert.Equal(t, query, rebind("sqlite", query))
	assert.Equal(t,
		"SELECT 1 FROM plans WHERE plan_name = $1 AND spec_level = $2",
		rebind("postgres", query))
}
