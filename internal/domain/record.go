package domain

// Canonical lookup names for the project-level attributes the extractor
// reads from the host model. The same names key the remote REST fields.
const (
	AttrPlanName      = "Plan Name"
	AttrSpecLevel     = "Spec Level"
	AttrClientName    = "Client Name"
	AttrDivision      = "Division"
	AttrSubdivision   = "Subdivision"
	AttrGarageLoading = "Garage Loading"
)

// RequiredAttributes lists the attributes that must be non-blank before a
// record may be synchronized, in canonical display order.
var RequiredAttributes = []string{
	AttrPlanName,
	AttrSpecLevel,
	AttrClientName,
	AttrDivision,
	AttrSubdivision,
}

// ProjectAttributes lists every attribute the tool manages on the model,
// required ones first.
var ProjectAttributes = []string{
	AttrPlanName,
	AttrSpecLevel,
	AttrClientName,
	AttrDivision,
	AttrSubdivision,
	AttrGarageLoading,
}

// NaturalKey identifies a plan in the remote store. No two stored rows may
// share the same key.
type NaturalKey struct {
	PlanName    string
	SpecLevel   string
	Subdivision string
}

// PlanRecord is the normalized, synchronizable description of one building
// design variant. It is built fresh from live model state on every
// extraction run and discarded after synchronization.
type PlanRecord struct {
	PlanName          string
	SpecLevel         string
	ClientName        string
	ClientDivision    string
	ClientSubdivision string
	GarageLoading     string

	OverallWidth string
	OverallDepth string
	Stories      int
	Bedrooms     int
	Bathrooms    float64
	GarageBays   int
	LivingArea   int
	TotalArea    int
}

// Key returns the natural key used for remote matching.
func (r *PlanRecord) Key() NaturalKey {
	return NaturalKey{
		PlanName:    r.PlanName,
		SpecLevel:   r.SpecLevel,
		Subdivision: r.ClientSubdivision,
	}
}

// MissingFields returns the display names of required fields that are
// blank, in canonical order. An empty result means the record is ready to
// synchronize.
func (r *PlanRecord) MissingFields() []string {
	var missing []string
	checks := []struct {
		name  string
		value string
	}{
		{AttrPlanName, r.PlanName},
		{AttrSpecLevel, r.SpecLevel},
		{AttrClientName, r.ClientName},
		{AttrDivision, r.ClientDivision},
		{AttrSubdivision, r.ClientSubdivision},
	}
	for _, c := range checks {
		if c.value == "" {
			missing = append(missing, c.name)
		}
	}
	return missing
}

// Complete reports whether all required fields are populated.
func (r *PlanRecord) Complete() bool {
	return len(r.MissingFields()) == 0
}
