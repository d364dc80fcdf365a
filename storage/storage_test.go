package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"creatorrate.app/cloud/models"
)

func runStorageSuite(t *testing.T, store Storage) {
	ctx := context.Background()

	t.Run("SubscriptionLifecycle", func(t *testing.T) {
		now := time.Now()
		sub := &models.Subscription{
			Email:     "creator@example.com",
			IsPaid:    false,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := store.SaveSubscription(ctx, sub); err != nil {
			t.Fatalf("Failed to save subscription: %v", err)
		}

		found, err := store.FindSubscriptionByEmail(ctx, "creator@example.com")
		if err != nil {
			t.Fatalf("Failed to find subscription: %v", err)
		}
		if found == nil {
			t.Fatalf("Expected subscription, got nil")
		}
		if found.IsPaid {
			t.Errorf("Expected unpaid subscription")
		}

		// The webhook's write path: unconditional set, then re-save.
		found.Activate("cus_1", "sub_1", time.Now())
		if err := store.SaveSubscription(ctx, found); err != nil {
			t.Fatalf("Failed to update subscription: %v", err)
		}

		updated, err := store.FindSubscriptionByEmail(ctx, "creator@example.com")
		if err != nil {
			t.Fatalf("Failed to re-find subscription: %v", err)
		}
		if !updated.IsPaid || updated.StripeCustomerID != "cus_1" || updated.StripeSubscriptionID != "sub_1" {
			t.Errorf("Activation did not persist: %+v", updated)
		}
	})

	t.Run("DealOperations", func(t *testing.T) {
		now := time.Now()
		first := &models.Deal{
			ID: "deal1", Email: "creator@example.com", Brand: "Acme Co",
			Platform: "instagram", Deliverable: "post", AmountCents: 50000,
			Currency: "USD", Status: models.DealStatusPaid,
			ClosedAt: now, CreatedAt: now.Add(-time.Hour), UpdatedAt: now,
		}
		second := &models.Deal{
			ID: "deal2", Email: "creator@example.com", Brand: "Brandly",
			Platform: "youtube", Deliverable: "video", AmountCents: 120000,
			Currency: "USD", Status: models.DealStatusDraft,
			CreatedAt: now, UpdatedAt: now,
		}

		for _, deal := range []*models.Deal{first, second} {
			if err := store.SaveDeal(ctx, deal); err != nil {
				t.Fatalf("Failed to save deal %s: %v", deal.ID, err)
			}
		}

		got, err := store.GetDeal(ctx, "deal1")
		if err != nil {
			t.Fatalf("Failed to get deal: %v", err)
		}
		if got == nil || got.Brand != "Acme Co" {
			t.Fatalf("Unexpected deal: %+v", got)
		}
		if got.ClosedAt.IsZero() {
			t.Errorf("Expected closed_at to roundtrip")
		}

		deals, err := store.FindDealsByEmail(ctx, "creator@example.com")
		if err != nil {
			t.Fatalf("Failed to list deals: %v", err)
		}
		if len(deals) != 2 {
			t.Fatalf("Expected 2 deals, got %d", len(deals))
		}
		if deals[0].ID != "deal1" {
			t.Errorf("Expected creation order, got %s first", deals[0].ID)
		}
		if !deals[1].ClosedAt.IsZero() {
			t.Errorf("Expected open deal to have zero closed_at")
		}

		if err := store.DeleteDeal(ctx, "deal1"); err != nil {
			t.Fatalf("Failed to delete deal: %v", err)
		}
		gone, err := store.GetDeal(ctx, "deal1")
		if err != nil {
			t.Fatalf("Failed to re-get deal: %v", err)
		}
		if gone != nil {
			t.Errorf("Expected nil after delete, got %+v", gone)
		}
	})

	t.Run("LegalProfileRoundtrip", func(t *testing.T) {
		now := time.Now()
		profile := &models.LegalProfile{
			Email: "creator@example.com", LegalName: "Jordan Creator",
			Country: "DE", BusinessType: models.BusinessTypeCompany,
			TaxID: "", VATRegistered: true, VATID: "DE123456789",
			CreatedAt: now, UpdatedAt: now,
		}

		if err := store.SaveLegalProfile(ctx, profile); err != nil {
			t.Fatalf("Failed to save legal profile: %v", err)
		}

		found, err := store.FindLegalProfileByEmail(ctx, "creator@example.com")
		if err != nil {
			t.Fatalf("Failed to find legal profile: %v", err)
		}
		if found == nil {
			t.Fatalf("Expected legal profile, got nil")
		}
		if !found.VATRegistered || found.VATID != "DE123456789" {
			t.Errorf("VAT fields did not roundtrip: %+v", found)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		sub, err := store.FindSubscriptionByEmail(ctx, "ghost@example.com")
		if err != nil {
			t.Errorf("Expected no error for missing subscription, got %v", err)
		}
		if sub != nil {
			t.Errorf("Expected nil for missing subscription, got %+v", sub)
		}

		deal, err := store.GetDeal(ctx, "ghost")
		if err != nil {
			t.Errorf("Expected no error for missing deal, got %v", err)
		}
		if deal != nil {
			t.Errorf("Expected nil for missing deal, got %+v", deal)
		}

		profile, err := store.FindLegalProfileByEmail(ctx, "ghost@example.com")
		if err != nil {
			t.Errorf("Expected no error for missing profile, got %v", err)
		}
		if profile != nil {
			t.Errorf("Expected nil for missing profile, got %+v", profile)
		}
	})
}

func TestMemoryStorage(t *testing.T) {
	store := NewMemoryStorage()
	defer store.Close()

	runStorageSuite(t, store)
}

func TestSQLiteStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close storage: %v", err)
		}
	}()

	runStorageSuite(t, store)
}

func TestSQLiteStorage_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Failed to close storage: %v", err)
	}

	// Reopening the same file replays migrations as a no-op.
	second, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("Failed to close reopened storage: %v", err)
	}
}
