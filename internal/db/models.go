// Package db provides SQLite persistence for inbox items and the finished
// records produced by converting them.
package db

import "time"

// Record is a finished record created by converting an inbox item.
type Record struct {
	ID        string
	ItemID    string
	Title     string
	Body      string
	CreatedAt time.Time
}
