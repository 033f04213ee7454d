package repository

import "errors"

// ErrStaleStatus is returned by compare-and-set status updates when the row
// no longer carries the expected current status: either the id is unknown or
// a concurrent transition won the race.
var ErrStaleStatus = errors.New("status changed concurrently")
