package models

import (
	"time"
)

// Lock is a row in the instance lock table. The holder refreshes
// LastModifiedTimestamp to keep the lease; a row older than its TTL may be
// claimed by another owner.
type Lock struct {
	Owner                 string
	LastModifiedTimestamp time.Time
	TTL                   time.Duration
}
