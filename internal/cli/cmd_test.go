package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/teflaherty67/PlanQuery/internal/config"
	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/hostmodel"
	"github.com/teflaherty67/PlanQuery/internal/logging"
	"github.com/teflaherty67/PlanQuery/internal/repository"
	"github.com/teflaherty67/PlanQuery/internal/service"
	"github.com/teflaherty67/PlanQuery/internal/testutil"
)

// keepOpenStore lets one store serve several command runs; the test DB
// is closed by its own cleanup.
type keepOpenStore struct{ repository.PlanStore }

func (keepOpenStore) Close() error { return nil }

// testApp wires an App over a real snapshot file and an in-memory SQL
// store for CLI integration tests.
func testApp(t *testing.T) (*App, repository.PlanStore) {
	t.Helper()

	store := repository.NewSQLPlanStore(testutil.NewTestDB(t), "sqlite", nil)

	app := &App{
		Config: &config.Config{
			Store: config.StoreConfig{
				Backend: config.BackendSQL,
				SQL:     config.SQLConfig{Driver: "sqlite", DSN: ":memory:"},
			},
			SnapshotPath: testutil.WriteTestSnapshot(t),
			LogLevel:     "disabled",
		},
		Logger:     logging.Nop(),
		Extract:    service.NewExtractService(),
		Attributes: service.NewAttributesService(),
		OpenModel:  hostmodel.Load,
		OpenStore: func() (repository.PlanStore, error) {
			return keepOpenStore{store}, nil
		},
		configured: true,
	}
	return app, store
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func storedTestPlan(t *testing.T, store repository.PlanStore) *repository.StoredPlan {
	t.Helper()
	found, err := store.FindByKey(context.Background(), testutil.NewTestRecord().Key())
	require.NoError(t, err)
	return found
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app, _ := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "planquery")
}

// --- extract command ---

func TestExtractCmd_PrintsRecordCard(t *testing.T) {
	app, store := testApp(t)

	output, err := executeCmd(t, app, "extract")
	require.NoError(t, err)

	assert.Contains(t, output, "Bellhaven II")
	assert.Contains(t, output, "Premium")
	assert.Contains(t, output, "1850 SF")
	assert.Contains(t, output, "2450 SF")

	assert.Nil(t, storedTestPlan(t, store), "extract must not write to the store")
}

func TestExtractCmd_SnapshotFlag(t *testing.T) {
	app, _ := testApp(t)

	other := strings.ReplaceAll(testutil.TestSnapshotJSON, "Bellhaven II", "Sagewood")
	path := filepath.Join(t.TempDir(), "other_snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(other), 0644))

	output, err := executeCmd(t, app, "extract", "--snapshot", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Sagewood")
	assert.NotContains(t, output, "Bellhaven II")
}

func TestExtractCmd_MissingSnapshot(t *testing.T) {
	app, _ := testApp(t)
	app.Config.SnapshotPath = filepath.Join(t.TempDir(), "nope.json")

	_, err := executeCmd(t, app, "extract")
	assert.Error(t, err)
}

func TestExtractCmd_ReportFlagSupplementsSnapshot(t *testing.T) {
	app, _ := testApp(t)

	// Snapshot without a floor-area report; areas come from the workbook.
	snapshot := `{
	  "project": {
	    "attributes": [
	      {"name": "Plan Name", "value": "Sagewood"},
	      {"name": "Spec Level", "value": "Base"},
	      {"name": "Client Name", "value": "Lifestyle Homes"},
	      {"name": "Division", "value": "Huntsville"},
	      {"name": "Subdivision", "value": "Juniper Hills"},
	      {"name": "Garage Loading", "value": "Side"}
	    ]
	  },
	  "levels": [{"name": "First Floor"}]
	}`
	snapPath := filepath.Join(t.TempDir(), "bare_snapshot.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(snapshot), 0644))

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Floor Areas (Heated)"))
	require.NoError(t, f.SetCellValue("Floor Areas (Heated)", "A1", "Living"))
	require.NoError(t, f.SetCellValue("Floor Areas (Heated)", "B1", "1410 SF"))
	require.NoError(t, f.SetCellValue("Floor Areas (Heated)", "A2", "Total Covered"))
	require.NoError(t, f.SetCellValue("Floor Areas (Heated)", "B2", "1950 SF"))
	reportPath := filepath.Join(t.TempDir(), "areas.xlsx")
	require.NoError(t, f.SaveAs(reportPath))
	require.NoError(t, f.Close())

	output, err := executeCmd(t, app, "extract", "--snapshot", snapPath, "--report", reportPath)
	require.NoError(t, err)
	assert.Contains(t, output, "1410 SF")
	assert.Contains(t, output, "1950 SF")
}

// --- sync command ---

func TestSyncCmd_InsertsNewPlan(t *testing.T) {
	app, store := testApp(t)

	output, err := executeCmd(t, app, "sync")
	require.NoError(t, err)
	assert.Contains(t, output, "Inserted")
	assert.Contains(t, output, "Bellhaven II / Premium / Cedar Creek")

	found := storedTestPlan(t, store)
	require.NotNil(t, found)
	assert.Equal(t, *testutil.NewTestRecord(), found.Record)
}

func TestSyncCmd_SecondRunWithoutYesCancels(t *testing.T) {
	app, store := testApp(t)

	_, err := executeCmd(t, app, "sync")
	require.NoError(t, err)

	// Non-interactive run cannot prompt, so the update is declined.
	output, err := executeCmd(t, app, "sync")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, output, "Cancelled")
	assert.Contains(t, output, "--yes")

	found := storedTestPlan(t, store)
	require.NotNil(t, found)
	assert.Equal(t, *testutil.NewTestRecord(), found.Record)
}

func TestSyncCmd_YesUpdatesExistingRow(t *testing.T) {
	app, store := testApp(t)

	_, err := executeCmd(t, app, "sync")
	require.NoError(t, err)
	firstID := storedTestPlan(t, store).ID

	model, err := hostmodel.Load(app.Config.SnapshotPath)
	require.NoError(t, err)
	require.NoError(t, model.SetAttribute(domain.AttrClientName, "Dream Finders"))
	require.NoError(t, model.Save())

	output, err := executeCmd(t, app, "sync", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Updated")

	found := storedTestPlan(t, store)
	require.NotNil(t, found)
	assert.Equal(t, firstID, found.ID)
	assert.Equal(t, "Dream Finders", found.Record.ClientName)
}

func TestSyncCmd_DryRunNeverWrites(t *testing.T) {
	app, store := testApp(t)

	output, err := executeCmd(t, app, "sync", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "would insert")
	assert.Nil(t, storedTestPlan(t, store))

	_, err = executeCmd(t, app, "sync")
	require.NoError(t, err)

	output, err = executeCmd(t, app, "sync", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "would update")
}

func TestSyncCmd_MissingFieldsCancelBeforeStore(t *testing.T) {
	app, store := testApp(t)

	blanked := strings.ReplaceAll(testutil.TestSnapshotJSON, "Lifestyle Homes", "")
	path := filepath.Join(t.TempDir(), "incomplete_snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(blanked), 0644))
	app.Config.SnapshotPath = path

	output, err := executeCmd(t, app, "sync")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, output, "Missing required information")
	assert.Contains(t, output, domain.AttrClientName)

	assert.Nil(t, storedTestPlan(t, store), "incomplete record must not reach the store")
}

func TestSyncCmd_StoreOpenErrorFails(t *testing.T) {
	app, _ := testApp(t)
	app.OpenStore = app.openConfiguredStore
	app.Config.Store.Backend = "carrier-pigeon"

	_, err := executeCmd(t, app, "sync")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

// --- attributes commands ---

func TestAttributesAddCmd(t *testing.T) {
	app, _ := testApp(t)

	partial := `{
	  "project": {
	    "attributes": [
	      {"name": "Plan Name", "value": "Bellhaven II"},
	      {"name": "Spec Level", "value": "Premium"}
	    ]
	  }
	}`
	path := filepath.Join(t.TempDir(), "partial_snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))
	app.Config.SnapshotPath = path

	output, err := executeCmd(t, app, "attributes", "add")
	require.NoError(t, err)
	assert.Contains(t, output, "Added 4 project attributes")
	assert.Contains(t, output, domain.AttrSubdivision)

	output, err = executeCmd(t, app, "attributes", "add")
	require.NoError(t, err)
	assert.Contains(t, output, "already exist")
}

func TestAttributesEditCmd_NeedsTerminal(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "attributes", "edit")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive")
}
