package session

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Session ids are ULIDs: 26-character Crockford Base32 strings with a
// millisecond timestamp prefix, so they sort by creation time.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID returns a fresh ULID.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(now.UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp in first 6 bytes (big-endian 48-bit).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	_, _ = rand.Read(b[6:])
	// Sequence in bytes 6-7 keeps ids unique within one millisecond.
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encode(b)
}

// encode writes 128 bits as 26 base32 characters, 5 bits at a time from the
// most significant end. The first character carries only 3 bits.
func encode(b [16]byte) string {
	var out [26]byte
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])
	for i := 25; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
