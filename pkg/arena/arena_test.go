package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlev-art/radixart/pkg/arena"
)

type probe struct {
	a, b int64
}

func TestArenaTracksLiveBytes(t *testing.T) {
	a := new(arena.Arena)
	assert.Equal(t, 0, a.Bytes())

	p := arena.New[probe](a)
	assert.NotNil(t, p)
	assert.Greater(t, a.Bytes(), 0)

	before := a.Bytes()
	q := arena.New[probe](a)
	assert.Equal(t, before*2, a.Bytes())

	arena.Free(a, p)
	assert.Equal(t, before, a.Bytes())

	arena.Free(a, q)
	assert.Equal(t, 0, a.Bytes())
}
