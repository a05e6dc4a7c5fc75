package ticket

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// IDLength is the fixed width of booking identifiers.
const IDLength = 10

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingID returns a fixed-length, uppercase base36 booking
// identifier: the low six characters of the current unix-millisecond
// timestamp followed by four random characters.  The time component
// keeps identifiers roughly monotonic; the random tail separates
// concurrent calls within the same millisecond.  Uniqueness is not
// guaranteed here — the repository rejects primary-key collisions and
// the create flow regenerates on ErrDuplicateBookingID.
func NewBookingID() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(ts) > IDLength-4 {
		ts = ts[len(ts)-(IDLength-4):]
	}
	return ts + randomBase36(IDLength-len(ts))
}

// randomBase36 returns n random characters from the base36 alphabet.
// crypto/rand never fails on supported platforms; if it somehow does,
// the byte defaults to zero and the character degrades to '0', which
// the collision safety net in the repository still covers.
func randomBase36(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36[int(b)%len(base36)]
	}
	return string(out)
}
