package club

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// DigestStatus is the notification state of a session's daily digest.
type DigestStatus string

const (
	DigestPending DigestStatus = "PENDING"
	DigestSent    DigestStatus = "SENT"
)
