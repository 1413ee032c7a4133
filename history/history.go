// Package history keeps the navigable address trail for a hash-addressed
// app: a linear list of entries with a cursor, push/replace writes, and
// back/forward movement. The guard pipeline only ever replaces; pushing and
// moving are the shell's business.
package history

type History struct {
	entries []string
	idx     int
}

func New() *History {
	return &History{idx: -1}
}

// Current returns the address under the cursor, empty before the first write.
func (h *History) Current() string {
	if h.idx < 0 || h.idx >= len(h.entries) {
		return ""
	}
	return h.entries[h.idx]
}

// Push adds a new entry after the cursor, dropping any forward tail.
func (h *History) Push(address string) {
	h.entries = append(h.entries[:h.idx+1], address)
	h.idx = len(h.entries) - 1
}

// Replace overwrites the entry under the cursor without growing the trail.
// On an empty history it establishes the first entry.
func (h *History) Replace(address string) {
	if h.idx < 0 {
		h.Push(address)
		return
	}
	h.entries[h.idx] = address
}

// Back moves the cursor one entry toward the past and reports the new
// address. It reports false at the far end.
func (h *History) Back() (string, bool) {
	if h.idx <= 0 {
		return "", false
	}
	h.idx--
	return h.entries[h.idx], true
}

// Forward moves the cursor one entry toward the present.
func (h *History) Forward() (string, bool) {
	if h.idx < 0 || h.idx >= len(h.entries)-1 {
		return "", false
	}
	h.idx++
	return h.entries[h.idx], true
}

func (h *History) Len() int {
	return len(h.entries)
}
