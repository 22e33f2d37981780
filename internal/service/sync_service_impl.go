package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/repository"
)

type syncService struct {
	store repository.PlanStore
}

// NewSyncService creates a SyncService over the given store.
func NewSyncService(store repository.PlanStore) SyncService {
	return &syncService{store: store}
}

// Synchronize performs at most one mutation. The lookup and the mutation
// are not atomic; a concurrent writer can win the race, in which case
// the SQL unique constraint surfaces it as an insert error.
func (s *syncService) Synchronize(ctx context.Context, record *domain.PlanRecord, confirm ConfirmFunc) (*SyncResult, error) {
	if err := requireComplete(record); err != nil {
		return nil, err
	}

	key := record.Key()
	existing, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		id, err := s.store.Insert(ctx, record)
		if err != nil {
			return nil, err
		}
		return &SyncResult{Action: ActionInserted, RemoteID: id}, nil
	}

	accepted := false
	if confirm != nil {
		accepted, err = confirm(key, existing)
		if err != nil {
			return nil, err
		}
	}
	if !accepted {
		return &SyncResult{Action: ActionCancelled, RemoteID: existing.ID, Existing: existing}, nil
	}

	if err := s.store.Update(ctx, existing.ID, record); err != nil {
		return nil, err
	}
	return &SyncResult{Action: ActionUpdated, RemoteID: existing.ID, Existing: existing}, nil
}

func (s *syncService) Preview(ctx context.Context, record *domain.PlanRecord) (*SyncResult, error) {
	if err := requireComplete(record); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByKey(ctx, record.Key())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &SyncResult{Action: ActionWouldInsert}, nil
	}
	return &SyncResult{Action: ActionWouldUpdate, RemoteID: existing.ID, Existing: existing}, nil
}

func requireComplete(record *domain.PlanRecord) error {
	if missing := record.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteRecord, strings.Join(missing, ", "))
	}
	return nil
}
