package kvstore

import (
	"strconv"
	"time"
)

// timestampID issues the millisecond-timestamp string ids the stored data
// uses, bumping past collisions so the result is unique among taken ids.
// Safe under the single-writer assumption enforced by the repository mutex.
func timestampID(taken func(string) bool) string {
	n := time.Now().UnixMilli()
	id := strconv.FormatInt(n, 10)
	for taken(id) {
		n++
		id = strconv.FormatInt(n, 10)
	}
	return id
}
