// Package storage contains types and interfaces, so that different persistence layers for decisions can be implemented.
//
// Interfaces in this package must:
//   - return ErrNotFound if the method is looking for one exact item in the database and it is not found
//   - return empty array for methods that can return multiple results and no result is found
//   - return ErrConflict when a conditional write finds the stored decision in another state than expected
//   - never hand out memory shared with the stored copy
package storage
