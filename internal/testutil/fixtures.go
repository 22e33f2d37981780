package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// RecordOption mutates a test record.
type RecordOption func(*domain.PlanRecord)

// WithPlanName overrides the plan name.
func WithPlanName(name string) RecordOption {
	return func(r *domain.PlanRecord) {
		r.PlanName = name
	}
}

// WithSpecLevel overrides the spec level.
func WithSpecLevel(level string) RecordOption {
	return func(r *domain.PlanRecord) {
		r.SpecLevel = level
	}
}

// WithSubdivision overrides the client subdivision.
func WithSubdivision(sub string) RecordOption {
	return func(r *domain.PlanRecord) {
		r.ClientSubdivision = sub
	}
}

// WithBlank blanks one required field by display name.
func WithBlank(attr string) RecordOption {
	return func(r *domain.PlanRecord) {
		switch attr {
		case domain.AttrPlanName:
			r.PlanName = ""
		case domain.AttrSpecLevel:
			r.SpecLevel = ""
		case domain.AttrClientName:
			r.ClientName = ""
		case domain.AttrDivision:
			r.ClientDivision = ""
		case domain.AttrSubdivision:
			r.ClientSubdivision = ""
		}
	}
}

// NewTestRecord builds a complete record with plausible values.
func NewTestRecord(opts ...RecordOption) *domain.PlanRecord {
	r := &domain.PlanRecord{
		PlanName:          "Bellhaven II",
		SpecLevel:         "Premium",
		ClientName:        "Lifestyle Homes",
		ClientDivision:    "Huntsville",
		ClientSubdivision: "Cedar Creek",
		GarageLoading:     "Front",
		OverallWidth:      `40'-0"`,
		OverallDepth:      `30'-0"`,
		Stories:           1,
		Bedrooms:          3,
		Bathrooms:         2.5,
		GarageBays:        2,
		LivingArea:        1850,
		TotalArea:         2450,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TestSnapshotJSON is a well-formed model snapshot whose extraction
// yields a complete record: one story, three bedrooms, two and a half
// baths, a two-bay garage, and a located floor-area report.
const TestSnapshotJSON = `{
  "project": {
    "attributes": [
      {"name": "Plan Name", "value": "Bellhaven II"},
      {"name": "Spec Level", "value": "Premium"},
      {"name": "Client Name", "value": "Lifestyle Homes"},
      {"name": "Division", "value": "Huntsville"},
      {"name": "Subdivision", "value": "Cedar Creek"},
      {"name": "Garage Loading", "value": "Front"}
    ]
  },
  "walls": [
    {"id": "w-1", "min": {"x": 0, "y": 0, "z": 0}, "max": {"x": 40, "y": 0.5, "z": 10}},
    {"id": "w-2", "min": {"x": 0, "y": 29.5, "z": 0}, "max": {"x": 40, "y": 30, "z": 10}},
    {"id": "w-3", "min": {"x": 0, "y": 0, "z": 0}, "max": {"x": 0.5, "y": 30, "z": 10}},
    {"id": "w-4", "min": {"x": 39.5, "y": 0, "z": 0}, "max": {"x": 40, "y": 30, "z": 10}}
  ],
  "levels": [
    {"name": "First Floor"},
    {"name": "Roof"},
    {"name": "Foundation"}
  ],
  "rooms": [
    {"name": "Primary Bedroom", "area": 168},
    {"name": "Bedroom 2", "area": 132},
    {"name": "Bedroom 3", "area": 128},
    {"name": "Primary Bath", "area": 90},
    {"name": "Bath 2", "area": 60},
    {"name": "Powder Bath", "area": 24},
    {"name": "2 Car Garage", "area": 420},
    {"name": "Kitchen", "area": 180}
  ],
  "reports": [
    {
      "title": "Floor Areas (Heated)",
      "rows": [
        ["Living", "1850 SF"],
        ["Garage", "420 SF"],
        ["Total Covered", "2450 SF"]
      ]
    }
  ]
}`

// WriteTestSnapshot writes TestSnapshotJSON into a temp dir and returns
// its path.
func WriteTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_snapshot.json")
	if err := os.WriteFile(path, []byte(TestSnapshotJSON), 0644); err != nil {
		t.Fatalf("failed to write test snapshot: %v", err)
	}
	return path
}
