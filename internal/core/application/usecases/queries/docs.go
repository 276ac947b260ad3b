// Package queries contains read operations over the storage ledger.
// Implements the Query pattern for read operations in the CQRS architecture:
// queries never open a unit of work and return read models detached from
// the ledger.
package queries
