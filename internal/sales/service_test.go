package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
	"github.com/stylelane/stylelane-backend/pkg/types"
)

type stubSaleRepo struct {
	created []*Sale
	byID    map[string]*Sale
	err     error
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{byID: map[string]*Sale{}}
}

func (s *stubSaleRepo) Create(ctx context.Context, sale *Sale) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, sale)
	s.byID[sale.ID] = sale
	return nil
}

func (s *stubSaleRepo) FindByID(ctx context.Context, id string) (*Sale, error) {
	if sale, ok := s.byID[id]; ok {
		return sale, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubSaleRepo) ListByStore(ctx context.Context, storeID string, params pagination.Params) ([]Sale, pagination.Cursor, error) {
	var out []Sale
	for _, sale := range s.byID {
		if sale.StoreID == storeID {
			out = append(out, *sale)
		}
	}
	return out, nil, nil
}

func (s *stubSaleRepo) List(ctx context.Context, params pagination.Params) ([]Sale, pagination.Cursor, error) {
	var out []Sale
	for _, sale := range s.byID {
		out = append(out, *sale)
	}
	return out, nil, nil
}

type stubInventoryService struct {
	record      *inventory.InventoryDTO
	getErr      error
	decErr      error
	decremented []int
}

func (s *stubInventoryService) GetByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryDTO, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.record, nil
}

func (s *stubInventoryService) Decrement(ctx context.Context, id uuid.UUID, quantity int) (*inventory.InventoryDTO, error) {
	if s.decErr != nil {
		return nil, s.decErr
	}
	s.decremented = append(s.decremented, quantity)
	return s.record, nil
}

type stubProductFinder struct {
	product *products.Product
	err     error
}

func (s *stubProductFinder) FindByID(ctx context.Context, id string) (*products.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.product == nil {
		return nil, dynamo.ErrNotFound
	}
	return s.product, nil
}

func money(t *testing.T, value string) types.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal: %v", err)
	}
	return types.NewMoney(d)
}

func TestCreateSaleComputesTotalAndDecrements(t *testing.T) {
	repo := newStubSaleRepo()
	invID := uuid.New()
	inv := &stubInventoryService{record: &inventory.InventoryDTO{
		ID:        invID.String(),
		ProductID: "p1",
		StoreID:   "s1",
		Quantity:  10,
	}}
	finder := &stubProductFinder{product: &products.Product{ID: "p1", Name: "Classic Tee", Price: money(t, "19.99")}}
	svc, err := NewService(repo, inv, finder)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateSaleInput{InventoryID: invID, Quantity: 3})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if dto.Total.String() != "59.97" {
		t.Fatalf("unexpected total %s", dto.Total)
	}
	if dto.UnitPrice.String() != "19.99" {
		t.Fatalf("unexpected unit price %s", dto.UnitPrice)
	}
	if dto.StoreID != "s1" || dto.ProductID != "p1" {
		t.Fatalf("sale should inherit inventory references, got %+v", dto)
	}
	if len(inv.decremented) != 1 || inv.decremented[0] != 3 {
		t.Fatalf("expected decrement of 3, got %v", inv.decremented)
	}
	if len(repo.created) != 1 {
		t.Fatal("expected one persisted sale")
	}
}

func TestCreateSaleRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := NewService(newStubSaleRepo(), &stubInventoryService{}, &stubProductFinder{})

	for _, qty := range []int{0, -2} {
		_, err := svc.Create(context.Background(), CreateSaleInput{InventoryID: uuid.New(), Quantity: qty})
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Errorf("quantity %d: expected validation error, got %v", qty, err)
		}
	}
}

func TestCreateSalePropagatesInventoryNotFound(t *testing.T) {
	inv := &stubInventoryService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")}
	svc, _ := NewService(newStubSaleRepo(), inv, &stubProductFinder{})

	_, err := svc.Create(context.Background(), CreateSaleInput{InventoryID: uuid.New(), Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateSaleNoRecordWhenDecrementFails(t *testing.T) {
	repo := newStubSaleRepo()
	invID := uuid.New()
	inv := &stubInventoryService{
		record: &inventory.InventoryDTO{ID: invID.String(), ProductID: "p1", StoreID: "s1"},
		decErr: pkgerrors.New(pkgerrors.CodeDependency, "store offline"),
	}
	finder := &stubProductFinder{product: &products.Product{ID: "p1", Price: money(t, "5")}}
	svc, _ := NewService(repo, inv, finder)

	_, err := svc.Create(context.Background(), CreateSaleInput{InventoryID: invID, Quantity: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.created) != 0 {
		t.Fatal("sale must not be recorded when the decrement fails")
	}
}

func TestListByStore(t *testing.T) {
	repo := newStubSaleRepo()
	storeID := uuid.New()
	saleID := uuid.NewString()
	repo.byID[saleID] = &Sale{ID: saleID, StoreID: storeID.String(), Quantity: 1}
	repo.byID["other"] = &Sale{ID: "other", StoreID: uuid.NewString(), Quantity: 2}

	svc, _ := NewService(repo, &stubInventoryService{}, &stubProductFinder{})
	dtos, _, err := svc.ListByStore(context.Background(), storeID, pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list by store: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != saleID {
		t.Fatalf("unexpected sales %+v", dtos)
	}
}
