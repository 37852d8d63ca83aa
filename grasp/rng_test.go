package grasp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvgrasp/grasp"
)

func TestNewRand_ZeroSeedIsDefault(t *testing.T) {
	a, b := grasp.NewRand(0), grasp.NewRand(grasp.DefaultSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, grasp.DeriveSeed(42, 3), grasp.DeriveSeed(42, 3))

	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 1000; stream++ {
		s := grasp.DeriveSeed(42, stream)
		prev, dup := seen[s]
		assert.False(t, dup, "streams %d and %d collide", prev, stream)
		seen[s] = stream
	}
	assert.NotEqual(t, grasp.DeriveSeed(1, 0), grasp.DeriveSeed(2, 0))
}

func TestDeriveRand(t *testing.T) {
	a, b := grasp.DeriveRand(7, 2), grasp.DeriveRand(7, 2)
	c := grasp.DeriveRand(7, 3)

	same, differ := true, false
	for i := 0; i < 20; i++ {
		x, y, z := a.Int63(), b.Int63(), c.Int63()
		same = same && x == y
		differ = differ || x != z
	}
	assert.True(t, same, "equal arguments, equal streams")
	assert.True(t, differ, "neighboring streams differ")

	d, e := grasp.DeriveRand(0, 5), grasp.DeriveRand(grasp.DefaultSeed, 5)
	assert.Equal(t, d.Int63(), e.Int63())
}
