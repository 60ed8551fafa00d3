package service

import "errors"

// Sentinel errors for the billing business rules. The API layer maps these
// to HTTP statuses and wire messages.
var (
	// ErrMissingField reports a required request field that was absent.
	ErrMissingField = errors.New("required field missing")

	// ErrMissingMonth reports an absent month parameter on the summary query.
	ErrMissingMonth = errors.New("month parameter missing")

	// ErrForbiddenParameter reports a subscriber_no parameter that does not
	// match the authenticated caller.
	ErrForbiddenParameter = errors.New("subscriber_no parameter does not match caller")

	// ErrBillNotFound reports that no bill matched the query.
	ErrBillNotFound = errors.New("bill not found")

	// ErrNoUnpaidBills reports that the subscriber has no unpaid bills.
	ErrNoUnpaidBills = errors.New("no unpaid bills")

	// ErrBillExists reports a duplicate (subscriber, month) pair on insert.
	ErrBillExists = errors.New("bill already exists for the subscriber and month")

	// ErrNotAdmin reports a non-admin caller on an admin-only operation.
	ErrNotAdmin = errors.New("caller is not the admin account")
)
