package compras

import (
	"strconv"
	"sync"
	"time"
)

var (
	tokenMu   sync.Mutex
	lastToken int64
)

// newToken returns a time-derived identifier for lists and items. The
// monotonic guard keeps two same-instant calls from issuing the same
// token within one process.
func newToken() string {
	tokenMu.Lock()
	defer tokenMu.Unlock()

	now := time.Now().UnixNano()
	if now <= lastToken {
		now = lastToken + 1
	}
	lastToken = now
	return strconv.FormatInt(now, 10)
}
