// Package store holds the per-entity persistence interfaces and their GORM
// implementations. Services depend on the interfaces only; connection
// lifecycle is owned by the caller that opens the *gorm.DB.
package store

import "errors"

// ErrNotFound is returned by every Find* method when the row is absent, so
// services never see driver-specific sentinel errors.
var ErrNotFound = errors.New("record not found")
