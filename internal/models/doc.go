// Package models defines the core domain records for EvenSplit.
//
// # Records
//
//   - User: registered account (username, email, bcrypt hash)
//   - Group: named collection of users that can own bills
//   - Bill: a shared expense with participants, a split strategy and splits
//   - BillSplit: one participant's owed share of one bill
//   - Settlement: an immutable payment that reduces a debt between two users
//
// # Design Principles
//
//  1. Records reference each other by ID strings, never by pointers, to avoid
//     circular references.
//  2. BillSplit rows are created in the same transaction as their Bill and are
//     never mutated afterwards; they only disappear when the bill is deleted.
//     Balance computation relies on this immutability.
//  3. Balances are derived, not stored: they are recomputed from bills, splits
//     and settlements on every query.
package models
