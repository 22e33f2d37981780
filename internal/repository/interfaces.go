// Package repository provides the remote plan store backends: a SQL
// table reached through database/sql and a hosted-table REST API. Both
// satisfy PlanStore, so the synchronization service never knows which
// one it is talking to.
package repository

import (
	"context"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// StoredPlan is a plan row as it exists in the remote store: the remote
// id plus the stored record fields.
type StoredPlan struct {
	ID     string
	Record domain.PlanRecord
}

// PlanStore is the remote plan catalog.
type PlanStore interface {
	// FindByKey returns the row matching the natural key, or (nil, nil)
	// when no row matches.
	FindByKey(ctx context.Context, key domain.NaturalKey) (*StoredPlan, error)

	// Insert creates a new row and returns its remote id.
	Insert(ctx context.Context, record *domain.PlanRecord) (string, error)

	// Update rewrites the non-key fields of an existing row.
	Update(ctx context.Context, id string, record *domain.PlanRecord) error

	// Backend names the store kind ("sql" or "rest") for display and
	// observability.
	Backend() string

	Close() error
}
