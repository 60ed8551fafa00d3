package models

// User represents a subscriber account.
//
// Users are created only through seeding or admin insertion; the service
// never updates or deletes them.
type User struct {
	// SubscriberNo uniquely identifies the subscriber.
	SubscriberNo string

	// PasswordHash is the bcrypt hash of the subscriber's password.
	PasswordHash string
}
