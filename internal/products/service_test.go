package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
	"github.com/stylelane/stylelane-backend/pkg/types"
)

type stubProductRepo struct {
	byID  map[string]*Product
	bySKU map[string]*Product
	err   error
	saved []*Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: map[string]*Product{}, bySKU: map[string]*Product{}}
}

func (s *stubProductRepo) Create(ctx context.Context, product *Product) error {
	if s.err != nil {
		return s.err
	}
	s.byID[product.ID] = product
	s.bySKU[product.SKU] = product
	return nil
}

func (s *stubProductRepo) Save(ctx context.Context, product *Product) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, product)
	s.byID[product.ID] = product
	return nil
}

func (s *stubProductRepo) FindByID(ctx context.Context, id string) (*Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if product, ok := s.byID[id]; ok {
		return product, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubProductRepo) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if product, ok := s.bySKU[sku]; ok {
		return product, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubProductRepo) List(ctx context.Context, params pagination.Params) ([]Product, pagination.Cursor, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	var out []Product
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, nil, nil
}

func money(t *testing.T, value string) types.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal: %v", err)
	}
	return types.NewMoney(d)
}

func TestCreateProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateProductInput{
		SKU:      "tee-001",
		Name:     "Classic Tee",
		Category: "tops",
		Price:    money(t, "19.99"),
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if dto.SKU != "TEE-001" {
		t.Fatalf("sku should be uppercased, got %q", dto.SKU)
	}
	if dto.Price.String() != "19.99" {
		t.Fatalf("unexpected price %s", dto.Price)
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	repo := newStubProductRepo()
	repo.bySKU["TEE-001"] = &Product{ID: uuid.NewString(), SKU: "TEE-001"}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), CreateProductInput{SKU: "TEE-001", Name: "Tee", Price: money(t, "10")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc, _ := NewService(newStubProductRepo())
	_, err := svc.Create(context.Background(), CreateProductInput{SKU: "X-1", Name: "X", Price: money(t, "-1")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetBySKU(t *testing.T) {
	repo := newStubProductRepo()
	repo.bySKU["JNS-001"] = &Product{ID: uuid.NewString(), SKU: "JNS-001", Name: "Denim Jeans"}
	svc, _ := NewService(repo)

	dto, err := svc.GetBySKU(context.Background(), " jns-001 ")
	if err != nil {
		t.Fatalf("get by sku: %v", err)
	}
	if dto.Name != "Denim Jeans" {
		t.Fatalf("unexpected product %+v", dto)
	}

	if _, err := svc.GetBySKU(context.Background(), "MISSING"); err == nil {
		t.Fatal("expected not found")
	}
}

func TestUpdateProductKeepsSKU(t *testing.T) {
	repo := newStubProductRepo()
	id := uuid.New()
	repo.byID[id.String()] = &Product{
		ID:        id.String(),
		SKU:       "JKT-001",
		Name:      "Jacket",
		Price:     money(t, "89.50"),
		CreatedAt: time.Now(),
	}
	svc, _ := NewService(repo)

	newName := "Winter Jacket"
	newPrice := money(t, "99.00")
	dto, err := svc.Update(context.Background(), id, UpdateProductInput{Name: &newName, Price: &newPrice})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if dto.SKU != "JKT-001" {
		t.Fatalf("sku must be immutable, got %q", dto.SKU)
	}
	if dto.Name != "Winter Jacket" || dto.Price.String() != "99" {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := NewService(newStubProductRepo())
	_, err := svc.Update(context.Background(), uuid.New(), UpdateProductInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
