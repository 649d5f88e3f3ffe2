// Package accounts holds the set of known identities the client can log in as.
//
// # Overview
//
// The set starts from models.SeedAccounts and grows when someone registers.
// Registered accounts live for the process lifetime only; accounts are never
// deleted or mutated.
//
// # Lookup
//
// FindByEmail performs an exact, case-sensitive match. Duplicate emails are
// allowed (registration does not deduplicate); the earliest account wins,
// so seed accounts shadow later registrations with the same email.
//
// # Identifiers
//
// Create assigns the next integer after the largest numeric id in the set,
// so identifiers read "1", "2", "3", ... and never repeat.
package accounts
