package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/tiffin-sathi/checkout-service/internal/models"
)

func TestDraftRepoLifecycle(t *testing.T) {
	repo := NewDraftRepo()
	draft := models.NewSubscriptionDraft("d-1", 1, "2026-01-12", time.Now())

	repo.Create(draft)

	got, err := repo.Get("d-1")
	if err != nil {
		t.Fatalf("expected draft, got %v", err)
	}
	if got.PackageID != 1 {
		t.Errorf("expected package 1, got %d", got.PackageID)
	}

	got.DeliveryAddress = "123 Main Street, Kathmandu"
	if err := repo.Update(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get("d-1")
	if got.DeliveryAddress != "123 Main Street, Kathmandu" {
		t.Errorf("update not persisted: %q", got.DeliveryAddress)
	}

	repo.Delete("d-1")
	if _, err := repo.Get("d-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound after delete, got %v", err)
	}
}

func TestDraftRepoUnknownID(t *testing.T) {
	repo := NewDraftRepo()

	if _, err := repo.Get("missing"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if err := repo.Update(models.SubscriptionDraft{DraftID: "missing"}); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound on update, got %v", err)
	}
	// deleting a missing draft is harmless
	repo.Delete("missing")
}
