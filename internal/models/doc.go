// Package models defines the core domain models for the billing service.
//
// The data model is deliberately small:
//   - User: a subscriber account that can authenticate
//   - Bill: one billing record for a subscriber in a month
//
// Bills reference users by subscriber number only. The reference is
// declarative: the storage layer does not enforce it, so a bill may exist
// for a subscriber number with no matching user row.
package models
