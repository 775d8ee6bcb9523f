package share

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// DefaultKeyLength matches the length of keys embedded in share URLs.
const DefaultKeyLength = 8

// NewKey returns a short URL-safe identifier: the low-order base-36 digits
// of the current millisecond clock followed by random characters from the
// same alphabet. Uniqueness is probabilistic, with no store round trip;
// callers that cannot tolerate collisions must pair this with a
// put-if-absent write.
func NewKey(length int) string {
	if length <= 0 {
		length = DefaultKeyLength
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if half := length / 2; len(ts) > half {
		ts = ts[len(ts)-half:]
	}

	buf := append(make([]byte, 0, length), ts...)
	for len(buf) < length {
		buf = append(buf, keyAlphabet[rand.IntN(len(keyAlphabet))])
	}
	return string(buf[:length])
}
