package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oguzk/mobilebill/internal/models"
)

// InsertBillIfAbsent inserts the bill unless a row already exists for its
// (subscriber_no, month) pair. The insert is atomic: INSERT OR IGNORE backed
// by the unique index on (subscriber_no, month), so concurrent identical
// calls cannot create duplicates. Returns true when the row was inserted.
func (s *SQLiteStore) InsertBillIfAbsent(ctx context.Context, bill *models.Bill) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO bills (subscriber_no, month, total, details, paid_status) VALUES (?, ?, ?, ?, ?)",
		bill.SubscriberNo, bill.Month, bill.Total, bill.Details, bill.Paid,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert bill: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// FindBill retrieves the bill for the given subscriber and month.
func (s *SQLiteStore) FindBill(ctx context.Context, subscriberNo, month string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := s.db.QueryRowContext(ctx,
		"SELECT subscriber_no, month, total, details, paid_status FROM bills WHERE subscriber_no = ? AND month = ?",
		subscriberNo, month,
	).Scan(&bill.SubscriberNo, &bill.Month, &bill.Total, &bill.Details, &bill.Paid)

	if err == sql.ErrNoRows {
		return nil, nil // Bill not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return bill, nil
}

// ListUnpaidMonths returns the months with an unpaid bill for the subscriber,
// ascending by month string.
func (s *SQLiteStore) ListUnpaidMonths(ctx context.Context, subscriberNo string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT month FROM bills WHERE subscriber_no = ? AND paid_status = ? ORDER BY month",
		subscriberNo, false,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid months: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		months = append(months, month)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unpaid months: %w", err)
	}

	return months, nil
}

// ListBillsDetailed returns the (total, details) rows for the subscriber and
// month, ascending by row id. The unique index normally limits this to one
// row, but the query supports many.
func (s *SQLiteStore) ListBillsDetailed(ctx context.Context, subscriberNo, month string) ([]models.BillLine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT total, details FROM bills WHERE subscriber_no = ? AND month = ? ORDER BY id",
		subscriberNo, month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill details: %w", err)
	}
	defer rows.Close()

	var lines []models.BillLine
	for rows.Next() {
		var line models.BillLine
		if err := rows.Scan(&line.Total, &line.Details); err != nil {
			return nil, fmt.Errorf("failed to scan bill line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill lines: %w", err)
	}

	return lines, nil
}
