package services

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// nextRecordID returns the current unix-millisecond timestamp, bumped by one
// when two submissions land in the same millisecond so ids stay unique and
// monotonically increasing within the process.
func nextRecordID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
