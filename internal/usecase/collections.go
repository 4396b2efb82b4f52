package usecase

import (
	"context"
	"encoding/json"

	"gyeonjeok/internal/usecase/interfaces"
)

// Record kinds; the store key scopes a collection to one user.
const (
	kindSuppliers     = "suppliers"
	kindClients       = "clients"
	kindItemTemplates = "itemTemplates"
	kindEstimates     = "estimates"
)

func collectionKey(kind, userID string) string {
	return kind + "_" + userID
}

func loadCollection[T any](ctx context.Context, store interfaces.IRecordStore, key string) ([]T, error) {
	raw, err := store.LoadCollection(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func saveCollection[T any](ctx context.Context, store interfaces.IRecordStore, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return store.SaveCollection(ctx, key, raw)
}

// upsertByKey replaces the first record matching the natural key in place,
// preserving list position, or appends when no match exists.
func upsertByKey[T any](list []T, match func(T) bool, rec T) []T {
	for i := range list {
		if match(list[i]) {
			list[i] = rec
			return list
		}
	}
	return append(list, rec)
}

func removeWhere[T any](list []T, match func(T) bool) []T {
	kept := make([]T, 0, len(list))
	for _, r := range list {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
