package roster

import (
	"strconv"
	"strings"
)

// KeyFunc computes the identity of an entry for deduplication.
type KeyFunc func(Entry) string

// Deduplicator remembers the keys it has admitted. A new one is created for
// every recognizer run so state never crosses rosters.
type Deduplicator struct {
	key  KeyFunc
	seen map[string]struct{}
}

func NewDeduplicator(key KeyFunc) *Deduplicator {
	return &Deduplicator{key: key, seen: map[string]struct{}{}}
}

// Admit returns false if an entry with the same key was admitted before.
func (d *Deduplicator) Admit(e Entry) bool {
	k := d.key(e)
	if _, seen := d.seen[k]; seen {
		return false
	}
	d.seen[k] = struct{}{}
	return true
}

// Dedup keeps the first occurrence of every key, preserving order.
func Dedup(entries []Entry, key KeyFunc) []Entry {
	d := NewDeduplicator(key)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if d.Admit(e) {
			out = append(out, e)
		}
	}
	return out
}

func jerseyKey(jersey *int) string {
	if jersey == nil {
		return "-"
	}
	return strconv.Itoa(*jersey)
}

func nameJerseyKey(e Entry) string {
	return strings.Join([]string{e.Name(), jerseyKey(e.Jersey)}, "\x00")
}

func nameJerseyPositionKey(e Entry) string {
	return strings.Join([]string{e.Name(), jerseyKey(e.Jersey), string(e.Position)}, "\x00")
}
