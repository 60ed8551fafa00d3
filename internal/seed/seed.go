// Package seed applies initial data to a store. The original system created
// its demo rows as an import side effect; here seeding is an explicit,
// idempotent step the process may run once at startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oguzk/mobilebill/internal/auth"
	"github.com/oguzk/mobilebill/internal/models"
	"github.com/oguzk/mobilebill/internal/storage"
)

// UserSeed is a user to insert, with its plaintext password. The password is
// hashed before it reaches the store.
type UserSeed struct {
	SubscriberNo string
	Password     string
}

// Data is a set of rows to apply.
type Data struct {
	Users []UserSeed
	Bills []models.Bill
}

// Default returns the seed rows the original system inserted at startup.
func Default() Data {
	return Data{
		Users: []UserSeed{
			{SubscriberNo: "admin", Password: "123"},
		},
		Bills: []models.Bill{
			{SubscriberNo: "ayşe", Month: "2024-04", Total: 100, Details: "Some details", Paid: false},
		},
	}
}

// Apply inserts the seed rows through the store's insert-if-absent
// operations, so applying the same data twice leaves existing rows untouched.
func Apply(ctx context.Context, store storage.Store, data Data) error {
	for _, u := range data.Users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %q: %w", u.SubscriberNo, err)
		}
		inserted, err := store.InsertUserIfAbsent(ctx, &models.User{
			SubscriberNo: u.SubscriberNo,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.SubscriberNo, err)
		}
		slog.Debug("Seed user", "subscriber_no", u.SubscriberNo, "inserted", inserted)
	}

	for i := range data.Bills {
		bill := data.Bills[i]
		inserted, err := store.InsertBillIfAbsent(ctx, &bill)
		if err != nil {
			return fmt.Errorf("failed to seed bill for %q/%q: %w", bill.SubscriberNo, bill.Month, err)
		}
		slog.Debug("Seed bill", "subscriber_no", bill.SubscriberNo, "month", bill.Month, "inserted", inserted)
	}

	return nil
}
