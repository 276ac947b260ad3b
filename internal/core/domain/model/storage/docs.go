// Package storage contains the Ledger aggregate: the capacity accounting of a
// storage facility made of fixed-size containers, one per goods kind.
//
// The package decides how many containers may exist, how much each may hold
// and how goods are added, withdrawn and inspected. It performs no I/O and no
// locking; the memory adapter serializes access to the single ledger.
package storage
