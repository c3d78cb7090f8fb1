/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package session

// DefaultHistCap is HIST_CAP's default value.
const DefaultHistCap = 16

type history struct {
	ring      [][]byte
	cap       int
	write     int
	count     int
	nav       int
	browsing  bool
}

func newHistory(capacity int) *history {
	if capacity <= 0 {
		capacity = DefaultHistCap
	}
	return &history{ring: make([][]byte, capacity), cap: capacity}
}

// push inserts line into the ring, de-duplicating an immediate repeat of
// the most recently pushed entry.
func (h *history) push(line []byte) {
	if h.count > 0 {
		prevIdx := (h.write - 1 + h.cap) % h.cap
		if string(h.ring[prevIdx]) == string(line) {
			return
		}
	}

	cp := make([]byte, len(line))
	copy(cp, line)

	h.ring[h.write] = cp
	h.write = (h.write + 1) % h.cap
	if h.count < h.cap {
		h.count++
	}
}

// up walks the navigation cursor one slot toward the oldest entry,
// stopping (not wrapping) once it reaches the oldest valid slot. It
// returns the selected entry and whether browsing is active.
func (h *history) up() ([]byte, bool) {
	if h.count == 0 {
		return nil, false
	}

	oldestIdx := (h.write - h.count + h.cap) % h.cap

	if !h.browsing {
		h.browsing = true
		h.nav = (h.write - 1 + h.cap) % h.cap
		return h.ring[h.nav], true
	}

	if h.nav == oldestIdx {
		return h.ring[h.nav], true
	}

	h.nav = (h.nav - 1 + h.cap) % h.cap
	return h.ring[h.nav], true
}

// down walks forward. Stepping past the newest entry clears browsing
// and returns an empty line.
func (h *history) down() ([]byte, bool) {
	if !h.browsing {
		return nil, false
	}

	newestIdx := (h.write - 1 + h.cap) % h.cap
	if h.nav == newestIdx {
		h.browsing = false
		return []byte{}, true
	}

	h.nav = (h.nav + 1) % h.cap
	return h.ring[h.nav], true
}

func (h *history) reset() {
	h.browsing = false
}
