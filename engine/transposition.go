package engine

import (
	"unsafe"

	"minimax-chess/board"
)

// Bound tells how a stored score relates to the true value of the node.
type Bound uint8

const (
	// Exact scores fell inside the search window.
	Exact Bound = iota
	// Lower scores failed high: the true value is at least Score.
	Lower
	// Upper scores failed low: the true value is at most Score.
	Upper
)

const clusterSize = 4

// Entry is one cached search result.
type Entry struct {
	Hash  uint64
	Score int32
	Depth int16
	Move  board.Move
	Bound Bound
}

// usable reports whether the entry settles a node searched with the given
// window, returning the score to use.
func (e *Entry) usable(alpha, beta int32) (int32, bool) {
	switch e.Bound {
	case Exact:
		return e.Score, true
	case Lower:
		if e.Score >= beta {
			return e.Score, true
		}
	case Upper:
		if e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}

// TransTable is a fixed-size hash table of 4-entry clusters. Hash 0 marks
// an empty slot.
type TransTable struct {
	entries      []Entry
	clusterCount uint64
}

// NewTransTable allocates a table of roughly sizeMB megabytes.
func NewTransTable(sizeMB int) *TransTable {
	tt := &TransTable{}
	tt.init(sizeMB)
	return tt
}

func (tt *TransTable) init(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]Entry, clusterCount*clusterSize)
}

// Get returns the entry stored for key.
func (tt *TransTable) Get(key uint64) (Entry, bool) {
	if tt.clusterCount == 0 || key == 0 {
		return Entry{}, false
	}
	base := int(key%tt.clusterCount) * clusterSize
	for i := base; i < base+clusterSize; i++ {
		if tt.entries[i].Hash == key {
			return tt.entries[i], true
		}
	}
	return Entry{}, false
}

// Put stores e under key. An existing entry for the same key is only
// overwritten by a search at least as deep; otherwise an empty slot is
// used, and failing that the shallowest entry of the cluster is replaced.
func (tt *TransTable) Put(key uint64, e Entry) {
	if tt.clusterCount == 0 || key == 0 {
		return
	}
	e.Hash = key
	base := int(key%tt.clusterCount) * clusterSize

	for i := base; i < base+clusterSize; i++ {
		if tt.entries[i].Hash == key {
			if e.Depth >= tt.entries[i].Depth {
				tt.entries[i] = e
			}
			return
		}
	}

	target := -1
	for i := base; i < base+clusterSize; i++ {
		if tt.entries[i].Hash == 0 {
			target = i
			break
		}
	}
	if target == -1 {
		target = base
		for i := base + 1; i < base+clusterSize; i++ {
			if tt.entries[i].Depth < tt.entries[target].Depth {
				target = i
			}
		}
	}
	tt.entries[target] = e
}

// Clear empties the table without releasing its memory.
func (tt *TransTable) Clear() {
	clear(tt.entries)
}

// Len counts occupied slots.
func (tt *TransTable) Len() int {
	n := 0
	for i := range tt.entries {
		if tt.entries[i].Hash != 0 {
			n++
		}
	}
	return n
}

// release drops the backing storage.
func (tt *TransTable) release() {
	tt.entries = nil
	tt.clusterCount = 0
}
