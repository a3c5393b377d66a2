// Package favorites persists the user's favorite books.
//
// The whole list lives in one key-value slot under Key as a JSON array of
// potter.Book values, in the order they were added. There is no schema
// version and no migration.
//
// Store has two operations. ReadAll never fails: a missing value is an empty
// list, and a corrupted one is logged and also treated as empty. Add is the
// only mutator; it deduplicates on Book.Number and rewrites the full array.
// Nothing removes or reorders entries.
//
// BadgerSlot backs the slot with an embedded Badger database. Each Set is a
// single transaction, so a failed write keeps the old array.
package favorites
