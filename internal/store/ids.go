package store

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// Record id prefixes.
const (
	PrefixStudent = "S"
	PrefixTeacher = "G"
	PrefixTask    = "T"
	PrefixGrade   = "N"
)

const (
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength = 9
)

// GenerateID returns prefix + millisecond epoch + 9 random base-36 characters.
func GenerateID(prefix string, now time.Time) string {
	suffix := make([]byte, idSuffixLength)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is gone; fall back to the clock.
			n = big.NewInt(time.Now().UnixNano() % int64(len(idAlphabet)))
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}
