package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oguzk/mobilebill/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("InsertUserIfAbsent inserts new user", func(t *testing.T) {
		inserted, err := store.InsertUserIfAbsent(ctx, &models.User{
			SubscriberNo: "alice",
			PasswordHash: "hash-1",
		})
		if err != nil {
			t.Fatalf("InsertUserIfAbsent failed: %v", err)
		}
		if !inserted {
			t.Error("expected first insert to report inserted=true")
		}
	})

	t.Run("InsertUserIfAbsent keeps existing row", func(t *testing.T) {
		inserted, err := store.InsertUserIfAbsent(ctx, &models.User{
			SubscriberNo: "alice",
			PasswordHash: "hash-2",
		})
		if err != nil {
			t.Fatalf("InsertUserIfAbsent failed: %v", err)
		}
		if inserted {
			t.Error("expected duplicate insert to report inserted=false")
		}

		user, err := store.FindUser(ctx, "alice")
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if user == nil {
			t.Fatal("expected user to exist")
		}
		if user.PasswordHash != "hash-1" {
			t.Errorf("expected existing row to win, got hash %q", user.PasswordHash)
		}
	})

	t.Run("FindUser returns nil for unknown subscriber", func(t *testing.T) {
		user, err := store.FindUser(ctx, "nobody")
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil, got %+v", user)
		}
	})
}

func TestSQLiteStoreBills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("InsertBillIfAbsent inserts new bill", func(t *testing.T) {
		inserted, err := store.InsertBillIfAbsent(ctx, &models.Bill{
			SubscriberNo: "alice",
			Month:        "2024-01",
			Total:        50,
			Details:      "x",
			Paid:         false,
		})
		if err != nil {
			t.Fatalf("InsertBillIfAbsent failed: %v", err)
		}
		if !inserted {
			t.Error("expected first insert to report inserted=true")
		}
	})

	t.Run("InsertBillIfAbsent leaves exactly one row per subscriber and month", func(t *testing.T) {
		inserted, err := store.InsertBillIfAbsent(ctx, &models.Bill{
			SubscriberNo: "alice",
			Month:        "2024-01",
			Total:        999,
			Details:      "other",
			Paid:         true,
		})
		if err != nil {
			t.Fatalf("InsertBillIfAbsent failed: %v", err)
		}
		if inserted {
			t.Error("expected duplicate insert to report inserted=false")
		}

		lines, err := store.ListBillsDetailed(ctx, "alice", "2024-01")
		if err != nil {
			t.Fatalf("ListBillsDetailed failed: %v", err)
		}
		if len(lines) != 1 {
			t.Fatalf("expected exactly one row, got %d", len(lines))
		}
		if lines[0].Total != 50 || lines[0].Details != "x" {
			t.Errorf("expected existing row to win, got %+v", lines[0])
		}
	})

	t.Run("FindBill round-trips fields", func(t *testing.T) {
		bill, err := store.FindBill(ctx, "alice", "2024-01")
		if err != nil {
			t.Fatalf("FindBill failed: %v", err)
		}
		if bill == nil {
			t.Fatal("expected bill to exist")
		}
		if bill.SubscriberNo != "alice" || bill.Month != "2024-01" {
			t.Errorf("identity mismatch: %+v", bill)
		}
		if bill.Total != 50 || bill.Details != "x" || bill.Paid {
			t.Errorf("field mismatch: %+v", bill)
		}
	})

	t.Run("FindBill returns nil for unknown month", func(t *testing.T) {
		bill, err := store.FindBill(ctx, "alice", "1999-12")
		if err != nil {
			t.Fatalf("FindBill failed: %v", err)
		}
		if bill != nil {
			t.Errorf("expected nil, got %+v", bill)
		}
	})

	t.Run("ListUnpaidMonths orders ascending and skips paid", func(t *testing.T) {
		seed := []models.Bill{
			{SubscriberNo: "bob", Month: "2024-03", Total: 30, Details: "c", Paid: false},
			{SubscriberNo: "bob", Month: "2024-01", Total: 10, Details: "a", Paid: false},
			{SubscriberNo: "bob", Month: "2024-02", Total: 20, Details: "b", Paid: true},
		}
		for i := range seed {
			if _, err := store.InsertBillIfAbsent(ctx, &seed[i]); err != nil {
				t.Fatalf("InsertBillIfAbsent failed: %v", err)
			}
		}

		months, err := store.ListUnpaidMonths(ctx, "bob")
		if err != nil {
			t.Fatalf("ListUnpaidMonths failed: %v", err)
		}
		want := []string{"2024-01", "2024-03"}
		if len(months) != len(want) {
			t.Fatalf("expected %d months, got %d (%v)", len(want), len(months), months)
		}
		for i := range want {
			if months[i] != want[i] {
				t.Errorf("month[%d]: expected %q, got %q", i, want[i], months[i])
			}
		}
	})

	t.Run("ListUnpaidMonths returns empty for fully paid subscriber", func(t *testing.T) {
		if _, err := store.InsertBillIfAbsent(ctx, &models.Bill{
			SubscriberNo: "carol", Month: "2024-05", Total: 70, Details: "d", Paid: true,
		}); err != nil {
			t.Fatalf("InsertBillIfAbsent failed: %v", err)
		}

		months, err := store.ListUnpaidMonths(ctx, "carol")
		if err != nil {
			t.Fatalf("ListUnpaidMonths failed: %v", err)
		}
		if len(months) != 0 {
			t.Errorf("expected no months, got %v", months)
		}
	})

	t.Run("ListBillsDetailed returns empty for unknown pair", func(t *testing.T) {
		lines, err := store.ListBillsDetailed(ctx, "alice", "")
		if err != nil {
			t.Fatalf("ListBillsDetailed failed: %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("expected no rows, got %v", lines)
		}
	})
}
