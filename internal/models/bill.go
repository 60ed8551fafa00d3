package models

// Bill is a billing record for one subscriber in one month.
//
// At most one bill should exist per (SubscriberNo, Month) pair; the SQLite
// store enforces this with a unique index.
type Bill struct {
	// SubscriberNo references User.SubscriberNo. Not enforced by storage:
	// a bill may be inserted for a subscriber that has no user row.
	SubscriberNo string

	// Month is a free-form month label (e.g. "2024-04"). It is stored and
	// compared as an opaque string, never validated as a calendar value.
	Month string

	// Total is the bill amount. The currency unit is unspecified upstream.
	Total int64

	// Details is a free-form description of the bill's line items, stored
	// as a single opaque field.
	Details string

	// Paid reports whether the bill has been paid.
	Paid bool
}

// BillLine is the (total, details) projection returned by detailed bill
// queries.
type BillLine struct {
	Total   int64
	Details string
}
