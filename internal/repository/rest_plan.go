package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// Display names for the numeric remote fields. The string fields reuse
// the attribute names from domain.
const (
	fieldOverallWidth = "Overall Width"
	fieldOverallDepth = "Overall Depth"
	fieldStories      = "Stories"
	fieldBedrooms     = "Bedrooms"
	fieldBathrooms    = "Bathrooms"
	fieldGarageBays   = "Garage Bays"
	fieldLivingArea   = "Living Area SF"
	fieldTotalArea    = "Total Area SF"
)

const restTimeout = 15 * time.Second

// RESTPlanStore implements PlanStore against a hosted-table HTTP API.
// Records live under {base_url}/{table}, each as an opaque id plus a
// fields object keyed by display names. Lookup uses a filter formula on
// the three key fields; updates PATCH only the non-key fields.
type RESTPlanStore struct {
	baseURL  string
	table    string
	token    string
	http     *http.Client
	observer Observer
}

// NewRESTPlanStore creates a store for one hosted table. token is sent
// as a bearer credential on every request.
func NewRESTPlanStore(baseURL, table, token string, observer Observer) *RESTPlanStore {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &RESTPlanStore{
		baseURL:  strings.TrimRight(baseURL, "/"),
		table:    table,
		token:    token,
		http:     &http.Client{Timeout: restTimeout},
		observer: observer,
	}
}

func (s *RESTPlanStore) Backend() string {
	return "rest"
}

func (s *RESTPlanStore) Close() error {
	s.http.CloseIdleConnections()
	return nil
}

// restRecord is one hosted-table record on the wire.
type restRecord struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

// restRecordList is the response body of a filtered list call.
type restRecordList struct {
	Records []restRecord `json:"records"`
}

func (s *RESTPlanStore) FindByKey(ctx context.Context, key domain.NaturalKey) (_ *StoredPlan, err error) {
	start := time.Now()
	defer func() { s.observe("find_by_key", start, err) }()

	q := url.Values{}
	q.Set("filterByFormula", filterFormula(key))
	q.Set("maxRecords", "1")

	var list restRecordList
	if err = s.doJSON(ctx, http.MethodGet, s.tableURL()+"?"+q.Encode(), nil, &list); err != nil {
		err = fmt.Errorf("looking up plan: %w", err)
		return nil, err
	}
	if len(list.Records) == 0 {
		return nil, nil
	}

	rec := list.Records[0]
	return &StoredPlan{ID: rec.ID, Record: recordFrom(rec.Fields)}, nil
}

func (s *RESTPlanStore) Insert(ctx context.Context, record *domain.PlanRecord) (_ string, err error) {
	start := time.Now()
	defer func() { s.observe("insert", start, err) }()

	var created restRecord
	if err = s.doJSON(ctx, http.MethodPost, s.tableURL(), restRecord{Fields: recordFields(record)}, &created); err != nil {
		err = fmt.Errorf("creating plan: %w", err)
		return "", err
	}
	return created.ID, nil
}

func (s *RESTPlanStore) Update(ctx context.Context, id string, record *domain.PlanRecord) (err error) {
	start := time.Now()
	defer func() { s.observe("update", start, err) }()

	u := s.tableURL() + "/" + url.PathEscape(id)
	if err = s.doJSON(ctx, http.MethodPatch, u, restRecord{Fields: nonKeyFields(record)}, nil); err != nil {
		err = fmt.Errorf("updating plan: %w", err)
		return err
	}
	return nil
}

func (s *RESTPlanStore) tableURL() string {
	return s.baseURL + "/" + url.PathEscape(s.table)
}

// doJSON performs one request with the bearer credential and decodes the
// response into out when non-nil. Non-2xx responses become errors
// carrying the status and a body snippet.
func (s *RESTPlanStore) doJSON(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote table returned status %d: %s", resp.StatusCode, bodySnippet(respBody))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (s *RESTPlanStore) observe(op string, start time.Time, err error) {
	s.observer.OnStoreCall(CallEvent{
		Backend:   s.Backend(),
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Err:       err,
	})
}

// filterFormula builds the lookup formula for one natural key, e.g.
// AND({Plan Name}='Bellhaven II',{Spec Level}='Premium',{Subdivision}='Cedar Creek').
func filterFormula(key domain.NaturalKey) string {
	return fmt.Sprintf("AND({%s}='%s',{%s}='%s',{%s}='%s')",
		domain.AttrPlanName, escapeFormulaValue(key.PlanName),
		domain.AttrSpecLevel, escapeFormulaValue(key.SpecLevel),
		domain.AttrSubdivision, escapeFormulaValue(key.Subdivision),
	)
}

// escapeFormulaValue escapes single quotes inside a formula string
// literal.
func escapeFormulaValue(v string) string {
	return strings.ReplaceAll(v, "'", `\'`)
}

// recordFields maps every record field to its remote display name.
func recordFields(record *domain.PlanRecord) map[string]any {
	return map[string]any{
		domain.AttrPlanName:      record.PlanName,
		domain.AttrSpecLevel:     record.SpecLevel,
		domain.AttrClientName:    record.ClientName,
		domain.AttrDivision:      record.ClientDivision,
		domain.AttrSubdivision:   record.ClientSubdivision,
		domain.AttrGarageLoading: record.GarageLoading,
		fieldOverallWidth:        record.OverallWidth,
		fieldOverallDepth:        record.OverallDepth,
		fieldStories:             record.Stories,
		fieldBedrooms:            record.Bedrooms,
		fieldBathrooms:           record.Bathrooms,
		fieldGarageBays:          record.GarageBays,
		fieldLivingArea:          record.LivingArea,
		fieldTotalArea:           record.TotalArea,
	}
}

// nonKeyFields is recordFields minus the natural-key fields, which an
// update never rewrites.
func nonKeyFields(record *domain.PlanRecord) map[string]any {
	fields := recordFields(record)
	delete(fields, domain.AttrPlanName)
	delete(fields, domain.AttrSpecLevel)
	delete(fields, domain.AttrSubdivision)
	return fields
}

// recordFrom rebuilds a PlanRecord from remote field values. Missing or
// mistyped fields become zero values.
func recordFrom(fields map[string]any) domain.PlanRecord {
	return domain.PlanRecord{
		PlanName:          fieldString(fields, domain.AttrPlanName),
		SpecLevel:         fieldString(fields, domain.AttrSpecLevel),
		ClientName:        fieldString(fields, domain.AttrClientName),
		ClientDivision:    fieldString(fields, domain.AttrDivision),
		ClientSubdivision: fieldString(fields, domain.AttrSubdivision),
		GarageLoading:     fieldString(fields, domain.AttrGarageLoading),
		OverallWidth:      fieldString(fields, fieldOverallWidth),
		OverallDepth:      fieldString(fields, fieldOverallDepth),
		Stories:           fieldInt(fields, fieldStories),
		Bedrooms:          fieldInt(fields, fieldBedrooms),
		Bathrooms:         fieldFloat(fields, fieldBathrooms),
		GarageBays:        fieldInt(fields, fieldGarageBays),
		LivingArea:        fieldInt(fields, fieldLivingArea),
		TotalArea:         fieldInt(fields, fieldTotalArea),
	}
}

func fieldString(fields map[string]any, name string) string {
	v, _ := fields[name].(string)
	return v
}

func fieldInt(fields map[string]any, name string) int {
	v, _ := fields[name].(float64)
	return int(v)
}

func fieldFloat(fields map[string]any, name string) float64 {
	v, _ := fields[name].(float64)
	return v
}

// bodySnippet truncates a response body for error messages.
func bodySnippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
