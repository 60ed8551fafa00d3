// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/oguzk/mobilebill/internal/models"
)

// Store defines the interface for bill and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// FindBill retrieves the bill for the given subscriber and month.
	// Returns (nil, nil) when no such bill exists.
	FindBill(ctx context.Context, subscriberNo, month string) (*models.Bill, error)

	// InsertBillIfAbsent inserts the bill unless one already exists for its
	// (subscriber, month) pair. Returns false when an existing row won;
	// the existing row is never updated.
	InsertBillIfAbsent(ctx context.Context, bill *models.Bill) (bool, error)

	// FindUser retrieves the user with the given subscriber number.
	// Returns (nil, nil) when no such user exists.
	FindUser(ctx context.Context, subscriberNo string) (*models.User, error)

	// InsertUserIfAbsent inserts the user unless one already exists with the
	// same subscriber number. Returns false when an existing row won.
	InsertUserIfAbsent(ctx context.Context, user *models.User) (bool, error)

	// ListUnpaidMonths returns the months with an unpaid bill for the
	// subscriber, in ascending month order.
	ListUnpaidMonths(ctx context.Context, subscriberNo string) ([]string, error)

	// ListBillsDetailed returns the (total, details) rows for the subscriber
	// and month, in insertion order.
	ListBillsDetailed(ctx context.Context, subscriberNo, month string) ([]models.BillLine, error)

	// Close releases any resources held by the store.
	Close() error
}
