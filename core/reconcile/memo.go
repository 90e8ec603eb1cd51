package reconcile

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Memo remembers the last Reconcile result for one view and skips the
// recomputation when the input has not changed. It is not safe for
// concurrent use; each view owns its own Memo.
type Memo struct {
	key    uint64
	result Result
	valid  bool
}

// Compute returns the result for in and whether it had to be recomputed.
// The returned result is shared with the memo and must not be modified.
func (m *Memo) Compute(in Input) (Result, bool) {
	key := Fingerprint(in)
	if m.valid && m.key == key {
		return m.result, false
	}

	m.result = Reconcile(in)
	m.key = key
	m.valid = true
	return m.result, true
}

// Reset drops the remembered result.
func (m *Memo) Reset() {
	*m = Memo{}
}

// Fingerprint hashes every field of in that affects the result.
// A nil roster and an empty roster hash differently, as do a nil and an
// empty PrimaryOwned.
func Fingerprint(in Input) uint64 {
	h := fnv.New64a()

	writeString(h, in.PrimaryID)
	writeChars(h, in.Characters)
	if in.PrimaryOwned == nil {
		writeInt(h, -1)
	} else {
		writeChars(h, in.PrimaryOwned)
	}

	writeInt(h, int64(len(in.Compare)))
	for _, u := range in.Compare {
		writeString(h, u.ID)
		writeChars(h, u.Characters)
	}

	if in.Roster == nil {
		writeInt(h, -1)
	} else {
		writeChars(h, in.Roster)
	}

	writeString(h, in.Search)
	writeInt(h, int64(in.Sort.Key))
	if in.Sort.Reversed {
		writeInt(h, 1)
	} else {
		writeInt(h, 0)
	}
	writeInt(h, int64(in.Cap))

	return h.Sum64()
}

func writeChars(h hash.Hash64, chars []Character) {
	writeInt(h, int64(len(chars)))
	for _, c := range chars {
		writeString(h, string(c.ID))
		writeString(h, c.Name)
		writeString(h, c.Image)
		writeString(h, c.Type)
		if c.HasDate() {
			writeInt(h, c.Date.UnixNano())
		} else {
			writeInt(h, 0)
		}
	}
}

func writeString(h hash.Hash64, s string) {
	writeInt(h, int64(len(s)))
	_, _ = h.Write([]byte(s))
}

func writeInt(h hash.Hash64, n int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])
}
