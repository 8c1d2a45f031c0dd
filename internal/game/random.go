// internal/game/random.go
//
// Randomness providers for secret generation.
//
// The engine never touches a global random source directly: New takes a
// Source, and CryptoSource is used when none is given. NewReaderSource turns
// any byte stream into a Source, which lets deterministic streams (see the
// daily package) drive secret generation.

package game

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// readerSource draws uniform integers from a byte stream.
type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a Source reading entropy from r.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source {
	return readerSource{r: rand.Reader}
}

// Intn uses rand.Int, which rejects out-of-range samples so the result is
// unbiased for any reader.
func (s readerSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn: non-positive bound %d", n)
	}
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("intn: %w", err)
	}
	return int(v.Int64()), nil
}
