package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

const planColumns = `id, plan_name, spec_level, client_name, client_division, client_subdivision,
	garage_loading, overall_width, overall_depth, stories, bedrooms, bathrooms,
	garage_bays, living_area, total_area`

// SQLPlanStore implements PlanStore over a database/sql connection.
// Queries are written with ? placeholders and rebound for drivers that
// use numbered ones.
type SQLPlanStore struct {
	db       *sql.DB
	driver   string
	observer Observer
}

// NewSQLPlanStore wraps an open database handle. driver is the name the
// connection was opened with ("sqlite" or "postgres").
func NewSQLPlanStore(db *sql.DB, driver string, observer Observer) *SQLPlanStore {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &SQLPlanStore{db: db, driver: driver, observer: observer}
}

func (s *SQLPlanStore) Backend() string {
	return "sql"
}

func (s *SQLPlanStore) Close() error {
	return s.db.Close()
}

func (s *SQLPlanStore) FindByKey(ctx context.Context, key domain.NaturalKey) (_ *StoredPlan, err error) {
	start := time.Now()
	defer func() { s.observe("find_by_key", start, err) }()

	query := rebind(s.driver, `SELECT `+planColumns+`
		FROM plans WHERE plan_name = ? AND spec_level = ? AND client_subdivision = ?`)
	row := s.db.QueryRowContext(ctx, query, key.PlanName, key.SpecLevel, key.Subdivision)

	var p StoredPlan
	err = row.Scan(
		&p.ID,
		&p.Record.PlanName, &p.Record.SpecLevel,
		&p.Record.ClientName, &p.Record.ClientDivision, &p.Record.ClientSubdivision,
		&p.Record.GarageLoading, &p.Record.OverallWidth, &p.Record.OverallDepth,
		&p.Record.Stories, &p.Record.Bedrooms, &p.Record.Bathrooms,
		&p.Record.GarageBays, &p.Record.LivingArea, &p.Record.TotalArea,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		err = fmt.Errorf("looking up plan: %w", err)
		return nil, err
	}
	return &p, nil
}

func (s *SQLPlanStore) Insert(ctx context.Context, record *domain.PlanRecord) (id string, err error) {
	start := time.Now()
	defer func() { s.observe("insert", start, err) }()

	id = uuid.New().String()
	now := nowUTC()
	query := rebind(s.driver, `INSERT INTO plans (`+planColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = s.db.ExecContext(ctx, query,
		id,
		record.PlanName, record.SpecLevel,
		record.ClientName, record.ClientDivision, record.ClientSubdivision,
		record.GarageLoading, record.OverallWidth, record.OverallDepth,
		record.Stories, record.Bedrooms, record.Bathrooms,
		record.GarageBays, record.LivingArea, record.TotalArea,
		now, now,
	)
	if err != nil {
		err = fmt.Errorf("inserting plan: %w", err)
		return "", err
	}
	return id, nil
}

func (s *SQLPlanStore) Update(ctx context.Context, id string, record *domain.PlanRecord) (err error) {
	start := time.Now()
	defer func() { s.observe("update", start, err) }()

	query := rebind(s.driver, `UPDATE plans SET
		client_name = ?, client_division = ?, garage_loading = ?,
		overall_width = ?, overall_depth = ?, stories = ?, bedrooms = ?,
		bathrooms = ?, garage_bays = ?, living_area = ?, total_area = ?,
		updated_at = ?
		WHERE id = ?`)
	_, err = s.db.ExecContext(ctx, query,
		record.ClientName, record.ClientDivision, record.GarageLoading,
		record.OverallWidth, record.OverallDepth, record.Stories, record.Bedrooms,
		record.Bathrooms, record.GarageBays, record.LivingArea, record.TotalArea,
		nowUTC(), id,
	)
	if err != nil {
		err = fmt.Errorf("updating plan: %w", err)
		return err
	}
	return nil
}

func (s *SQLPlanStore) observe(op string, start time.Time, err error) {
	s.observer.OnStoreCall(CallEvent{
		Backend:   s.Backend(),
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Err:       err,
	})
}
