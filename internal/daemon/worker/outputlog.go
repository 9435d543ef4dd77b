package worker

import "sync"

// DefaultOutputCapacity is the number of worker output lines kept in memory.
const DefaultOutputCapacity = 1000

// OutputLog is a fixed-capacity ring buffer of captured worker output.
// When full, the oldest line is evicted. All methods are safe for
// concurrent use.
type OutputLog struct {
	mu    sync.RWMutex
	lines []string
	cap   int
	head  int    // index of the oldest line
	count int    // number of lines currently stored
	seq   uint64 // total lines ever appended
}

// NewOutputLog creates an OutputLog holding at most capacity lines.
func NewOutputLog(capacity int) *OutputLog {
	if capacity < 1 {
		capacity = 1
	}
	return &OutputLog{
		lines: make([]string, capacity),
		cap:   capacity,
	}
}

// Append adds a line, evicting the oldest one when full.
func (o *OutputLog) Append(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.count == o.cap {
		o.lines[o.head] = line
		o.head = (o.head + 1) % o.cap
	} else {
		o.lines[(o.head+o.count)%o.cap] = line
		o.count++
	}
	o.seq++
}

// Lines returns the retained lines, oldest first.
func (o *OutputLog) Lines() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.tailLocked(o.count)
}

// Since returns the retained lines appended after sequence number seq and
// the current sequence number. Lines already evicted are skipped.
func (o *OutputLog) Since(seq uint64) ([]string, uint64) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if seq >= o.seq {
		return nil, o.seq
	}
	n := o.seq - seq
	if n > uint64(o.count) {
		n = uint64(o.count)
	}
	return o.tailLocked(int(n)), o.seq
}

func (o *OutputLog) tailLocked(n int) []string {
	out := make([]string, n)
	start := o.head + o.count - n
	for i := 0; i < n; i++ {
		out[i] = o.lines[(start+i)%o.cap]
	}
	return out
}

// Clear drops every retained line. The sequence number keeps counting.
func (o *OutputLog) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.lines {
		o.lines[i] = ""
	}
	o.head = 0
	o.count = 0
}

// Len returns the number of retained lines.
func (o *OutputLog) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.count
}

// Cap returns the capacity.
func (o *OutputLog) Cap() int {
	return o.cap
}

// Seq returns the total number of lines ever appended.
func (o *OutputLog) Seq() uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.seq
}
