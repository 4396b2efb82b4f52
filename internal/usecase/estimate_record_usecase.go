package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gyeonjeok/internal/domain/entities"
	"gyeonjeok/internal/usecase/interfaces"
)

var (
	ErrMissingEstimateNumber = errors.New("missing estimate number")
	ErrMissingEstimateClient = errors.New("missing estimate client name")
	ErrEstimateNotFound      = errors.New("estimate not found")
)

// IEstimateRecordUseCase exposes the per-user estimate collection.
//
// Create prepends (most-recent-first ordering) and assigns an opaque id
// stable for the record's lifetime. Update requires an existing id and
// preserves id and CreatedAt. Delete is idempotent-success; Update of an
// unknown id is not — that asymmetry is the service's contract.

type IEstimateRecordUseCase interface {
	List(ctx context.Context, userID string) ([]entities.EstimateRecord, error)
	Create(ctx context.Context, userID string, doc entities.EstimateDocument) (entities.EstimateRecord, error)
	Update(ctx context.Context, userID, id string, doc entities.EstimateDocument) (entities.EstimateRecord, error)
	Delete(ctx context.Context, userID, id string) ([]entities.EstimateRecord, error)
}

type EstimateRecordUseCase struct {
	store interfaces.IRecordStore
}

var _ IEstimateRecordUseCase = (*EstimateRecordUseCase)(nil)

func NewEstimateRecordUseCase(store interfaces.IRecordStore) *EstimateRecordUseCase {
	return &EstimateRecordUseCase{store: store}
}

func (u *EstimateRecordUseCase) List(ctx context.Context, userID string) ([]entities.EstimateRecord, error) {
	return loadCollection[entities.EstimateRecord](ctx, u.store, collectionKey(kindEstimates, userID))
}

func (u *EstimateRecordUseCase) Create(ctx context.Context, userID string, doc entities.EstimateDocument) (entities.EstimateRecord, error) {
	if err := validateEstimateDocument(doc); err != nil {
		return entities.EstimateRecord{}, err
	}

	key := collectionKey(kindEstimates, userID)
	list, err := loadCollection[entities.EstimateRecord](ctx, u.store, key)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	now := time.Now().UTC()
	rec := entities.EstimateRecord{
		EstimateDocument: doc,
		ID:               newRecordID(now),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	list = append([]entities.EstimateRecord{rec}, list...)
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return entities.EstimateRecord{}, err
	}
	return rec, nil
}

func (u *EstimateRecordUseCase) Update(ctx context.Context, userID, id string, doc entities.EstimateDocument) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	if err := validateEstimateDocument(doc); err != nil {
		return entities.EstimateRecord{}, err
	}

	key := collectionKey(kindEstimates, userID)
	list, err := loadCollection[entities.EstimateRecord](ctx, u.store, key)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		rec := entities.EstimateRecord{
			EstimateDocument: doc,
			ID:               id,
			CreatedAt:        list[i].CreatedAt,
			UpdatedAt:        time.Now().UTC(),
		}
		list[i] = rec
		if err := saveCollection(ctx, u.store, key, list); err != nil {
			return entities.EstimateRecord{}, err
		}
		return rec, nil
	}
	return entities.EstimateRecord{}, ErrEstimateNotFound
}

func (u *EstimateRecordUseCase) Delete(ctx context.Context, userID, id string) ([]entities.EstimateRecord, error) {
	key := collectionKey(kindEstimates, userID)
	list, err := loadCollection[entities.EstimateRecord](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = removeWhere(list, func(r entities.EstimateRecord) bool { return r.ID == id })
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func validateEstimateDocument(doc entities.EstimateDocument) error {
	if strings.TrimSpace(doc.EstimateNumber) == "" {
		return ErrMissingEstimateNumber
	}
	// The editor keeps clientName mirrored from client.name, but the service
	// does not assume a well-behaved caller: either field satisfies the check.
	if strings.TrimSpace(doc.Client.Name) == "" && strings.TrimSpace(doc.ClientName) == "" {
		return ErrMissingEstimateClient
	}
	return nil
}

// newRecordID builds the server-assigned estimate id: creation time plus a
// random suffix, unique and stable for the record's lifetime.
func newRecordID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
