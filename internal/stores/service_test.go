package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

type stubStoreRepo struct {
	records map[string]*Store
	err     error
	saved   []*Store
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{records: map[string]*Store{}}
}

func (s *stubStoreRepo) Create(ctx context.Context, record *Store) error {
	if s.err != nil {
		return s.err
	}
	s.records[record.ID] = record
	return nil
}

func (s *stubStoreRepo) Save(ctx context.Context, record *Store) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, record)
	s.records[record.ID] = record
	return nil
}

func (s *stubStoreRepo) FindByID(ctx context.Context, id string) (*Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	if record, ok := s.records[id]; ok {
		return record, nil
	}
	return nil, dynamo.ErrNotFound
}

func (s *stubStoreRepo) List(ctx context.Context, params pagination.Params) ([]Store, pagination.Cursor, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	var out []Store
	for _, record := range s.records {
		out = append(out, *record)
	}
	return out, nil, nil
}

func TestCreateStore(t *testing.T) {
	repo := newStubStoreRepo()
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateStoreInput{Name: "  StyleLane Flagship ", Location: "New York"})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if dto.Name != "StyleLane Flagship" {
		t.Fatalf("name should be trimmed, got %q", dto.Name)
	}
	if dto.ID == "" {
		t.Fatal("expected generated id")
	}
	if _, err := uuid.Parse(dto.ID); err != nil {
		t.Fatalf("id should be a uuid: %v", err)
	}
}

func TestCreateStoreRequiresName(t *testing.T) {
	svc, _ := NewService(newStubStoreRepo())
	_, err := svc.Create(context.Background(), CreateStoreInput{Name: "  "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetStoreNotFound(t *testing.T) {
	svc, _ := NewService(newStubStoreRepo())
	_, err := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStore(t *testing.T) {
	repo := newStubStoreRepo()
	id := uuid.New()
	repo.records[id.String()] = &Store{ID: id.String(), Name: "Old", Location: "LA", CreatedAt: time.Now()}
	svc, _ := NewService(repo)

	newName := "New Name"
	dto, err := svc.Update(context.Background(), id, UpdateStoreInput{Name: &newName})
	if err != nil {
		t.Fatalf("update store: %v", err)
	}
	if dto.Name != "New Name" {
		t.Fatalf("unexpected name %q", dto.Name)
	}
	if dto.Location != "LA" {
		t.Fatalf("location should be untouched, got %q", dto.Location)
	}
	if len(repo.saved) != 1 {
		t.Fatal("expected one save")
	}
}

func TestUpdateStoreDependencyError(t *testing.T) {
	repo := newStubStoreRepo()
	repo.err = errors.New("boom")
	svc, _ := NewService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateStoreInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
