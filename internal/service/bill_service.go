package service

import (
	"context"
	"log/slog"

	"github.com/oguzk/mobilebill/internal/models"
	"github.com/oguzk/mobilebill/internal/storage"
)

// pageSize is the fixed number of rows per page on detailed queries.
const pageSize = 10

// BillService implements the bill query and mutation rules.
type BillService struct {
	store        storage.Store
	adminSubject string
	logger       *slog.Logger
}

// NewBillService creates a new bill service. adminSubject is the subscriber
// number recognized as the administrative account.
func NewBillService(store storage.Store, adminSubject string, logger *slog.Logger) *BillService {
	return &BillService{
		store:        store,
		adminSubject: adminSubject,
		logger:       logger,
	}
}

// effectiveSubscriber resolves which subscriber a query will run against.
// An explicit requested subscriber must equal the authenticated one; callers
// may always name themselves, never anyone else. When no subscriber is
// requested, the authenticated identity is used.
func effectiveSubscriber(authenticated, requested string) (string, error) {
	if requested != "" && requested != authenticated {
		return "", ErrForbiddenParameter
	}
	if requested != "" {
		return requested, nil
	}
	return authenticated, nil
}

// QuerySummary returns the bill for the effective subscriber and month.
// month is required; a missing month is ErrMissingMonth even when the
// subscriber has bills.
func (s *BillService) QuerySummary(ctx context.Context, authenticated, requested, month string) (*models.Bill, error) {
	subscriberNo, err := effectiveSubscriber(authenticated, requested)
	if err != nil {
		return nil, err
	}
	if month == "" {
		return nil, ErrMissingMonth
	}

	bill, err := s.store.FindBill(ctx, subscriberNo, month)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return bill, nil
}

// QueryDetailed returns one page of (total, details) rows for the effective
// subscriber and month.
//
// month is optional here, unlike QuerySummary: with no month the lookup runs
// against the empty string and matches nothing. That asymmetry mirrors the
// upstream behavior and is kept deliberately.
//
// Pages are 1-indexed and sliced out of the eagerly fetched result set; a
// page beyond the data is ErrBillNotFound. Pages below 1 are treated as 1.
func (s *BillService) QueryDetailed(ctx context.Context, authenticated, requested, month string, page int) ([]models.BillLine, error) {
	subscriberNo, err := effectiveSubscriber(authenticated, requested)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	lines, err := s.store.ListBillsDetailed(ctx, subscriberNo, month)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrBillNotFound
	}

	start := (page - 1) * pageSize
	if start >= len(lines) {
		return nil, ErrBillNotFound
	}
	end := start + pageSize
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end], nil
}

// UnpaidMonths returns the months with unpaid bills for the effective
// subscriber, ascending by month. Returns ErrNoUnpaidBills when there are
// none.
func (s *BillService) UnpaidMonths(ctx context.Context, authenticated, requested string) ([]string, error) {
	subscriberNo, err := effectiveSubscriber(authenticated, requested)
	if err != nil {
		return nil, err
	}

	months, err := s.store.ListUnpaidMonths(ctx, subscriberNo)
	if err != nil {
		return nil, err
	}
	if len(months) == 0 {
		return nil, ErrNoUnpaidBills
	}
	return months, nil
}

// PayBill reports whether the bill for (subscriberNo, month) is paid.
//
// Despite the name, this NEVER mutates state: the upstream "pay" endpoint is
// a status check that reports success for already-paid bills and an error for
// unpaid ones, and that behavior is reproduced literally. Returns
// ErrBillNotFound when no bill matches.
func (s *BillService) PayBill(ctx context.Context, subscriberNo, month string) (bool, error) {
	bill, err := s.store.FindBill(ctx, subscriberNo, month)
	if err != nil {
		return false, err
	}
	if bill == nil {
		return false, ErrBillNotFound
	}
	return bill.Paid, nil
}

// AddBill inserts a bill on behalf of the administrative account.
// The caller's authenticated subject must equal the configured admin
// subscriber; otherwise ErrNotAdmin. A bill already present for the
// (subscriber, month) pair is ErrBillExists.
func (s *BillService) AddBill(ctx context.Context, authenticated string, bill *models.Bill) error {
	if authenticated != s.adminSubject {
		return ErrNotAdmin
	}

	inserted, err := s.store.InsertBillIfAbsent(ctx, bill)
	if err != nil {
		return err
	}
	if !inserted {
		return ErrBillExists
	}

	s.logger.Info("Bill added",
		"subscriber_no", bill.SubscriberNo,
		"month", bill.Month,
		"total", bill.Total,
		"paid_status", bill.Paid,
	)
	return nil
}
