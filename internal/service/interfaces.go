package service

import (
	"context"
	"errors"

	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/extract"
	"github.com/teflaherty67/PlanQuery/internal/repository"
)

// ErrIncompleteRecord marks a record with blank required fields. Nothing
// is sent to the remote store when this is returned.
var ErrIncompleteRecord = errors.New("record has blank required fields")

// SyncAction describes what a synchronization run did, or would do.
type SyncAction string

const (
	ActionInserted    SyncAction = "inserted"
	ActionUpdated     SyncAction = "updated"
	ActionCancelled   SyncAction = "cancelled"
	ActionWouldInsert SyncAction = "would-insert"
	ActionWouldUpdate SyncAction = "would-update"
)

// SyncResult reports the outcome of one synchronization run. Existing is
// set whenever a matching remote row was found.
type SyncResult struct {
	Action   SyncAction
	RemoteID string
	Existing *repository.StoredPlan
}

// ConfirmFunc asks whether an existing row may be overwritten. Returning
// false cancels the run without touching the store.
type ConfirmFunc func(key domain.NaturalKey, existing *repository.StoredPlan) (bool, error)

// ExtractService builds plan records from a loaded model.
type ExtractService interface {
	Extract(src extract.Source) *domain.PlanRecord
}

// SyncService reconciles one record against the remote store.
type SyncService interface {
	// Synchronize looks the record up by natural key, inserts when no
	// row matches, and otherwise updates only after confirm accepts.
	Synchronize(ctx context.Context, record *domain.PlanRecord, confirm ConfirmFunc) (*SyncResult, error)

	// Preview stops after the lookup and reports what Synchronize
	// would do.
	Preview(ctx context.Context, record *domain.PlanRecord) (*SyncResult, error)
}

// AttributeSource is the slice of the model the attributes commands
// need: named attributes with write-back and persistence.
type AttributeSource interface {
	Attribute(name string) (string, bool)
	SetAttribute(name, value string) error
	Save() error
}

// AttributesService manages the named project attributes on a model.
type AttributesService interface {
	// Ensure creates every managed attribute that is missing, with an
	// empty value, and returns the names it added.
	Ensure(src AttributeSource) ([]string, error)

	// Values reads the current value of every managed attribute.
	// Missing attributes read as empty.
	Values(src AttributeSource) map[string]string

	// Apply writes the given attribute values and saves the model.
	Apply(src AttributeSource, values map[string]string) error
}
