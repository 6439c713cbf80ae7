// control/history.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO of recent commits for debug dumps.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/splitvec/api"
)

// CommitRecord describes one committed extension.
type CommitRecord struct {
	Base     int
	Written  int
	Reserved int
	At       time.Time
}

// History keeps the most recent commits, dropping the oldest beyond its
// limit. It implements api.SplitObserver.
type History struct {
	mu        sync.Mutex
	q         *queue.Queue
	limit     int
	overflows int64
	now       func() time.Time
}

// NewHistory keeps up to limit records. A non-positive limit keeps one.
func NewHistory(limit int) *History {
	return &History{
		q:     queue.New(),
		limit: max(limit, 1),
		now:   time.Now,
	}
}

func (h *History) OnSplit(int, int) {}

func (h *History) OnCommit(base, written, reserved int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.q.Add(CommitRecord{Base: base, Written: written, Reserved: reserved, At: h.now()})
	for h.q.Length() > h.limit {
		h.q.Remove()
	}
}

func (h *History) OnCapacityExceeded(int, int) {
	h.mu.Lock()
	h.overflows++
	h.mu.Unlock()
}

// Records returns the retained commits, oldest first.
func (h *History) Records() []CommitRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]CommitRecord, h.q.Length())
	for i := range out {
		out[i] = h.q.Get(i).(CommitRecord)
	}
	return out
}

// Last returns the newest commit.
func (h *History) Last() (CommitRecord, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.q.Length() == 0 {
		return CommitRecord{}, false
	}
	return h.q.Get(-1).(CommitRecord), true
}

// Overflows returns how many writes were rejected.
func (h *History) Overflows() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.overflows
}

var _ api.SplitObserver = (*History)(nil)
