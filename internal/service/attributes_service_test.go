package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/hostmodel"
)

const partialSnapshot = `{
  "project": {
    "attributes": [
      {"name": "Plan Name", "value": "Bellhaven II"},
      {"name": "Spec Level", "value": "Premium"}
    ]
  }
}`

func loadPartialSnapshot(t *testing.T) (*hostmodel.Snapshot, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(partialSnapshot), 0644))
	s, err := hostmodel.Load(path)
	require.NoError(t, err)
	return s, path
}

func TestEnsure_AddsMissingAttributesAndSaves(t *testing.T) {
	snapshot, path := loadPartialSnapshot(t)
	svc := NewAttributesService()

	added, err := svc.Ensure(snapshot)
	require.NoError(t, err)
	assert.Equal(t, []string{
		domain.AttrClientName,
		domain.AttrDivision,
		domain.AttrSubdivision,
		domain.AttrGarageLoading,
	}, added)

	// existing values untouched
	v, ok := snapshot.Attribute(domain.AttrPlanName)
	assert.True(t, ok)
	assert.Equal(t, "Bellhaven II", v)

	// persisted, so a reload sees all six
	reloaded, err := hostmodel.Load(path)
	require.NoError(t, err)
	for _, name := range domain.ProjectAttributes {
		_, ok := reloaded.Attribute(name)
		assert.True(t, ok, "attribute %s should exist after Ensure", name)
	}
}

func TestEnsure_NoopWhenAllPresent(t *testing.T) {
	snapshot, path := loadPartialSnapshot(t)
	svc := NewAttributesService()

	_, err := svc.Ensure(snapshot)
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	added, err := svc.Ensure(snapshot)
	require.NoError(t, err)
	assert.Empty(t, added)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "second Ensure must not rewrite the file")
}

func TestValues_MissingAttributesReadEmpty(t *testing.T) {
	snapshot, _ := loadPartialSnapshot(t)

	values := NewAttributesService().Values(snapshot)
	assert.Len(t, values, len(domain.ProjectAttributes))
	assert.Equal(t, "Bellhaven II", values[domain.AttrPlanName])
	assert.Equal(t, "Premium", values[domain.AttrSpecLevel])
	assert.Equal(t, "", values[domain.AttrClientName])
	assert.Equal(t, "", values[domain.AttrGarageLoading])
}

func TestApply_WritesAndPersists(t *testing.T) {
	snapshot, path := loadPartialSnapshot(t)
	svc := NewAttributesService()

	err := svc.Apply(snapshot, map[string]string{
		domain.AttrClientName:  "Lifestyle Homes",
		domain.AttrDivision:    "Huntsville",
		domain.AttrSubdivision: "Cedar Creek",
		domain.AttrSpecLevel:   "Elite",
	})
	require.NoError(t, err)

	reloaded, err := hostmodel.Load(path)
	require.NoError(t, err)

	v, _ := reloaded.Attribute(domain.AttrClientName)
	assert.Equal(t, "Lifestyle Homes", v)
	v, _ = reloaded.Attribute(domain.AttrSpecLevel)
	assert.Equal(t, "Elite", v)
	v, _ = reloaded.Attribute(domain.AttrPlanName)
	assert.Equal(t, "Bellhaven II", v, "attributes absent from the map keep their values")
}

func TestApply_IgnoresUnmanagedNames(t *testing.T) {
	snapshot, _ := loadPartialSnapshot(t)

	err := NewAttributesService().Apply(snapshot, map[string]string{
		"Roof Pitch": "8:12",
	})
	require.NoError(t, err)

	_, ok := snapshot.Attribute("Roof Pitch")
	assert.False(t, ok)
}
