// Package domain defines domain-level errors for the history feature.
package domain

import "errors"

// ErrEntryNotFound indicates that no history entry exists with the given ID.
var ErrEntryNotFound = errors.New("history entry not found")
