package service

import (
	"strconv"
	"time"
)

// newRecordID returns a time-based decimal id. Nanosecond resolution keeps
// ids unique at this service's request rates without coordination.
func newRecordID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
