package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gyeonjeok/internal/domain/entities"
	mock_interfaces "gyeonjeok/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_SaveSupplier(t *testing.T) {
	t.Run("missing company name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveSupplier(context.Background(), "user-1", entities.Supplier{CompanyName: "  "})
		if !errors.Is(err, ErrMissingCompanyName) {
			t.Fatalf("expected ErrMissingCompanyName, got %v", err)
		}
	})

	t.Run("appends new supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().LoadCollection(gomock.Any(), "suppliers_user-1").Return(nil, nil)

		var saved []entities.Supplier
		store.EXPECT().SaveCollection(gomock.Any(), "suppliers_user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				return json.Unmarshal(payload, &saved)
			})

		list, err := uc.SaveSupplier(context.Background(), "user-1", entities.Supplier{CompanyName: "한빛건설"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].CompanyName != "한빛건설" {
			t.Fatalf("unexpected list: %+v", list)
		}
		if len(saved) != 1 {
			t.Fatalf("expected 1 persisted record, got %d", len(saved))
		}
	})

	t.Run("replaces matching key in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		existing := []entities.Supplier{
			{CompanyName: "한빛건설", Phone: "02-111-1111"},
			{CompanyName: "대성인테리어"},
		}
		store.EXPECT().LoadCollection(gomock.Any(), "suppliers_user-1").Return(mustMarshal(t, existing), nil)
		store.EXPECT().SaveCollection(gomock.Any(), "suppliers_user-1", gomock.Any()).Return(nil)

		list, err := uc.SaveSupplier(context.Background(), "user-1", entities.Supplier{CompanyName: "한빛건설", Phone: "02-222-2222"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 records, got %d", len(list))
		}
		if list[0].CompanyName != "한빛건설" || list[0].Phone != "02-222-2222" {
			t.Fatalf("expected in-place replacement at position 0, got %+v", list[0])
		}
	})

	t.Run("trims the natural key before matching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		existing := []entities.Supplier{{CompanyName: "한빛건설"}}
		store.EXPECT().LoadCollection(gomock.Any(), "suppliers_user-1").Return(mustMarshal(t, existing), nil)
		store.EXPECT().SaveCollection(gomock.Any(), "suppliers_user-1", gomock.Any()).Return(nil)

		list, err := uc.SaveSupplier(context.Background(), "user-1", entities.Supplier{CompanyName: " 한빛건설 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected upsert, not append: %+v", list)
		}
	})
}

func TestCatalogUseCase_DeleteSupplier(t *testing.T) {
	t.Run("removes matching record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		existing := []entities.Supplier{
			{CompanyName: "한빛건설"},
			{CompanyName: "대성인테리어"},
		}
		store.EXPECT().LoadCollection(gomock.Any(), "suppliers_user-1").Return(mustMarshal(t, existing), nil)
		store.EXPECT().SaveCollection(gomock.Any(), "suppliers_user-1", gomock.Any()).Return(nil)

		list, err := uc.DeleteSupplier(context.Background(), "user-1", "한빛건설")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].CompanyName != "대성인테리어" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("unknown key succeeds with unchanged list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		existing := []entities.Supplier{{CompanyName: "한빛건설"}}
		store.EXPECT().LoadCollection(gomock.Any(), "suppliers_user-1").Return(mustMarshal(t, existing), nil)
		store.EXPECT().SaveCollection(gomock.Any(), "suppliers_user-1", gomock.Any()).Return(nil)

		list, err := uc.DeleteSupplier(context.Background(), "user-1", "없는회사")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected unchanged list, got %+v", list)
		}
	})
}

func TestCatalogUseCase_Clients(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveClient(context.Background(), "user-1", entities.Client{})
		if !errors.Is(err, ErrMissingClientName) {
			t.Fatalf("expected ErrMissingClientName, got %v", err)
		}
	})

	t.Run("list of absent collection is empty, not nil error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().LoadCollection(gomock.Any(), "clients_user-1").Return(nil, nil)

		list, err := uc.ListClients(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", list)
		}
	})

	t.Run("collections are isolated per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().LoadCollection(gomock.Any(), "clients_user-2").Return(nil, nil)

		if _, err := uc.ListClients(context.Background(), "user-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_ItemTemplates(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveItemTemplate(context.Background(), "user-1", entities.ItemTemplate{Name: ""})
		if !errors.Is(err, ErrMissingTemplateName) {
			t.Fatalf("expected ErrMissingTemplateName, got %v", err)
		}
	})

	t.Run("upsert then delete round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().LoadCollection(gomock.Any(), "itemTemplates_user-1").Return(nil, nil)

		var persisted []byte
		store.EXPECT().SaveCollection(gomock.Any(), "itemTemplates_user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				persisted = payload
				return nil
			})

		list, err := uc.SaveItemTemplate(context.Background(), "user-1", entities.ItemTemplate{Name: "도배", Quantity: 1, Price: 150000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("unexpected list: %+v", list)
		}

		store.EXPECT().LoadCollection(gomock.Any(), "itemTemplates_user-1").
			DoAndReturn(func(context.Context, string) ([]byte, error) { return persisted, nil })
		store.EXPECT().SaveCollection(gomock.Any(), "itemTemplates_user-1", gomock.Any()).Return(nil)

		list, err = uc.DeleteItemTemplate(context.Background(), "user-1", "도배")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list after delete, got %+v", list)
		}
	})
}
