package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/sweetshop/sweetshop-api/internal/model"
	"github.com/sweetshop/sweetshop-api/internal/testutil"
)

func TestSweetRepository_CreateAndGet(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "sweetrepo-create")
	repo := NewSweetRepository(d)
	ctx := context.Background()

	s := &model.Sweet{Name: "Chocolate Bar", Category: "Chocolate", Price: 2.99, Quantity: 50}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == 0 {
		t.Fatal("expected generated ID to be set")
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Chocolate Bar" || got.Category != "Chocolate" || got.Price != 2.99 || got.Quantity != 50 {
		t.Fatalf("unexpected sweet: %+v", got)
	}
}

func TestSweetRepository_ListInsertionOrder(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "sweetrepo-list")
	repo := NewSweetRepository(d)
	ctx := context.Background()

	names := []string{"Fudge", "Gummy Bears", "Toffee"}
	for _, name := range names {
		if err := repo.Create(ctx, &model.Sweet{Name: name, Category: "Misc", Price: 1, Quantity: 1}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	// Listing is idempotent with no intervening writes.
	for i := 0; i < 2; i++ {
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != len(names) {
			t.Fatalf("expected %d sweets, got %d", len(names), len(list))
		}
		for j, name := range names {
			if list[j].Name != name {
				t.Fatalf("position %d: expected %q, got %q", j, name, list[j].Name)
			}
		}
	}
}

func TestSweetRepository_AdjustQuantity(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "sweetrepo-adjust")
	repo := NewSweetRepository(d)
	ctx := context.Background()

	s := &model.Sweet{Name: "Sour Patch", Category: "Sour", Price: 2.49, Quantity: 20}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.AdjustQuantity(ctx, s.ID, 30)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if updated.Quantity != 50 {
		t.Fatalf("expected quantity 50, got %d", updated.Quantity)
	}
}

func TestSweetRepository_AdjustQuantityUnderflow(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "sweetrepo-underflow")
	repo := NewSweetRepository(d)
	ctx := context.Background()

	s := &model.Sweet{Name: "Mints", Category: "Mint", Price: 0.99, Quantity: 5}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.AdjustQuantity(ctx, s.ID, -10); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got %v", err)
	}

	// Quantity must be untouched after the rejected adjustment.
	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", got.Quantity)
	}

	// A decrement within bounds is allowed by the store layer.
	updated, err := repo.AdjustQuantity(ctx, s.ID, -5)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", updated.Quantity)
	}
}

func TestSweetRepository_AdjustQuantityNotFound(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "sweetrepo-missing")
	repo := NewSweetRepository(d)
	ctx := context.Background()

	if _, err := repo.AdjustQuantity(ctx, 999, 10); !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}
