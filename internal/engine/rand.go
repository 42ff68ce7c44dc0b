package engine

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
)

// Source picks a uniformly random index in [0, n). Injectable so tests
// can make the step orchestrator's random-firing path fully deterministic
// (spec §9, "Randomness").
type Source interface {
	Intn(n int) int
}

// defaultSource is a math/rand.Rand seeded from system entropy at
// construction time, used whenever the caller does not inject one.
type defaultSource struct {
	r *mrand.Rand
}

// NewDefaultSource returns a Source seeded from crypto/rand entropy.
func NewDefaultSource() Source {
	return &defaultSource{r: mrand.New(mrand.NewSource(cryptoSeed()))}
}

func (s *defaultSource) Intn(n int) int {
	return s.r.Intn(n)
}

// cryptoSeed draws a 64-bit seed from crypto/rand, falling back to 1 in
// the practically-unreachable case the system entropy source errors.
func cryptoSeed() int64 {
	max := big.NewInt(1<<62 - 1)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 1
	}
	var buf [8]byte
	n.FillBytes(buf[:])
	return int64(binary.BigEndian.Uint64(buf[:]))
}
