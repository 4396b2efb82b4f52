package usecase

import (
	"context"
	"errors"
	"strings"

	"gyeonjeok/internal/domain/entities"
	"gyeonjeok/internal/usecase/interfaces"
)

var (
	ErrMissingCompanyName  = errors.New("missing supplier companyName")
	ErrMissingClientName   = errors.New("missing client name")
	ErrMissingTemplateName = errors.New("missing item template name")
)

// ICatalogUseCase exposes the three natural-key record collections
// (suppliers, clients, item templates), each scoped to one user.
//
// Save is an upsert by natural key: an existing record with the same key is
// replaced in place, anything else appends. Delete is idempotent — removing
// a missing key succeeds and returns the unchanged collection. Every
// mutation returns the full updated collection so the caller can resync its
// cache without a follow-up read.

type ICatalogUseCase interface {
	ListSuppliers(ctx context.Context, userID string) ([]entities.Supplier, error)
	SaveSupplier(ctx context.Context, userID string, s entities.Supplier) ([]entities.Supplier, error)
	DeleteSupplier(ctx context.Context, userID, companyName string) ([]entities.Supplier, error)

	ListClients(ctx context.Context, userID string) ([]entities.Client, error)
	SaveClient(ctx context.Context, userID string, c entities.Client) ([]entities.Client, error)
	DeleteClient(ctx context.Context, userID, name string) ([]entities.Client, error)

	ListItemTemplates(ctx context.Context, userID string) ([]entities.ItemTemplate, error)
	SaveItemTemplate(ctx context.Context, userID string, t entities.ItemTemplate) ([]entities.ItemTemplate, error)
	DeleteItemTemplate(ctx context.Context, userID, name string) ([]entities.ItemTemplate, error)
}

type CatalogUseCase struct {
	store interfaces.IRecordStore
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store interfaces.IRecordStore) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

func (u *CatalogUseCase) ListSuppliers(ctx context.Context, userID string) ([]entities.Supplier, error) {
	return loadCollection[entities.Supplier](ctx, u.store, collectionKey(kindSuppliers, userID))
}

func (u *CatalogUseCase) SaveSupplier(ctx context.Context, userID string, s entities.Supplier) ([]entities.Supplier, error) {
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	if s.CompanyName == "" {
		return nil, ErrMissingCompanyName
	}

	key := collectionKey(kindSuppliers, userID)
	list, err := loadCollection[entities.Supplier](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = upsertByKey(list, func(r entities.Supplier) bool { return r.CompanyName == s.CompanyName }, s)
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *CatalogUseCase) DeleteSupplier(ctx context.Context, userID, companyName string) ([]entities.Supplier, error) {
	key := collectionKey(kindSuppliers, userID)
	list, err := loadCollection[entities.Supplier](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = removeWhere(list, func(r entities.Supplier) bool { return r.CompanyName == companyName })
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *CatalogUseCase) ListClients(ctx context.Context, userID string) ([]entities.Client, error) {
	return loadCollection[entities.Client](ctx, u.store, collectionKey(kindClients, userID))
}

func (u *CatalogUseCase) SaveClient(ctx context.Context, userID string, c entities.Client) ([]entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ErrMissingClientName
	}

	key := collectionKey(kindClients, userID)
	list, err := loadCollection[entities.Client](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = upsertByKey(list, func(r entities.Client) bool { return r.Name == c.Name }, c)
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *CatalogUseCase) DeleteClient(ctx context.Context, userID, name string) ([]entities.Client, error) {
	key := collectionKey(kindClients, userID)
	list, err := loadCollection[entities.Client](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = removeWhere(list, func(r entities.Client) bool { return r.Name == name })
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *CatalogUseCase) ListItemTemplates(ctx context.Context, userID string) ([]entities.ItemTemplate, error) {
	return loadCollection[entities.ItemTemplate](ctx, u.store, collectionKey(kindItemTemplates, userID))
}

func (u *CatalogUseCase) SaveItemTemplate(ctx context.Context, userID string, t entities.ItemTemplate) ([]entities.ItemTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, ErrMissingTemplateName
	}

	key := collectionKey(kindItemTemplates, userID)
	list, err := loadCollection[entities.ItemTemplate](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = upsertByKey(list, func(r entities.ItemTemplate) bool { return r.Name == t.Name }, t)
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *CatalogUseCase) DeleteItemTemplate(ctx context.Context, userID, name string) ([]entities.ItemTemplate, error) {
	key := collectionKey(kindItemTemplates, userID)
	list, err := loadCollection[entities.ItemTemplate](ctx, u.store, key)
	if err != nil {
		return nil, err
	}
	list = removeWhere(list, func(r entities.ItemTemplate) bool { return r.Name == name })
	if err := saveCollection(ctx, u.store, key, list); err != nil {
		return nil, err
	}
	return list, nil
}
