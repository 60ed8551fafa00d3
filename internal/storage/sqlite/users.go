package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oguzk/mobilebill/internal/models"
)

// InsertUserIfAbsent inserts the user unless a row with the same subscriber
// number already exists. The insert is atomic: INSERT OR IGNORE backed by the
// UNIQUE constraint on subscriber_no, so concurrent identical calls cannot
// create duplicates. Returns true when the row was inserted.
func (s *SQLiteStore) InsertUserIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (subscriber_no, password_hash) VALUES (?, ?)",
		user.SubscriberNo, user.PasswordHash,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// FindUser retrieves a user by subscriber number.
func (s *SQLiteStore) FindUser(ctx context.Context, subscriberNo string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT subscriber_no, password_hash FROM users WHERE subscriber_no = ?",
		subscriberNo,
	).Scan(&user.SubscriberNo, &user.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
