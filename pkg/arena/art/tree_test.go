package art_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlev-art/radixart/pkg/arena/art"
	"github.com/mlev-art/radixart/pkg/arena/art/node"
)

func TestEmptyTree(t *testing.T) {
	tr := art.New()
	_, ok := tr.Search([]byte("anything"))
	assert.False(t, ok)
	// The root itself is allocated by New and lives for the tree's whole
	// lifetime, so an empty tree's byte count is the root's size, not zero.
	assert.Greater(t, tr.Bytes(), 0)

	_, found := tr.Delete([]byte("anything"))
	assert.False(t, found)
}

func TestKeyLengthOutOfRangeIsNoop(t *testing.T) {
	tr := art.New()

	_, replaced := tr.Insert(nil, 1)
	assert.False(t, replaced)

	tooLong := make([]byte, 256)
	_, replaced = tr.Insert(tooLong, 1)
	assert.False(t, replaced)

	_, ok := tr.Search(tooLong)
	assert.False(t, ok)

	_, found := tr.Delete(tooLong)
	assert.False(t, found)

	var count int
	tr.Visit(func(key []byte, v node.Value) bool {
		count++
		return true
	})
	assert.Equal(t, 0, count)
}

func TestPutGetRoundTrip(t *testing.T) {
	tr := art.New()
	old, replaced := tr.Insert([]byte("hello"), 42)
	assert.False(t, replaced)
	assert.Equal(t, node.Value(0), old)

	v, ok := tr.Search([]byte("hello"))
	require.True(t, ok)
	assert.Equal(t, node.Value(42), v)
}

func TestOverwriteReplacesValue(t *testing.T) {
	tr := art.New()
	tr.Insert([]byte("key"), 1)
	old, replaced := tr.Insert([]byte("key"), 2)
	assert.True(t, replaced)
	assert.Equal(t, node.Value(1), old)

	v, ok := tr.Search([]byte("key"))
	require.True(t, ok)
	assert.Equal(t, node.Value(2), v)
}

func TestRemoveCancelsPut(t *testing.T) {
	tr := art.New()
	tr.Insert([]byte("key"), 1)
	old, found := tr.Delete([]byte("key"))
	assert.True(t, found)
	assert.Equal(t, node.Value(1), old)

	_, ok := tr.Search([]byte("key"))
	assert.False(t, ok)
}

func TestDeleteUnknownKeyIsNoop(t *testing.T) {
	tr := art.New()
	tr.Insert([]byte("key"), 1)
	_, found := tr.Delete([]byte("nope"))
	assert.False(t, found)

	v, ok := tr.Search([]byte("key"))
	require.True(t, ok)
	assert.Equal(t, node.Value(1), v)
}

func TestIndependentKeysDoNotInterfere(t *testing.T) {
	tr := art.New()
	keys := map[string]node.Value{
		"apple":  1,
		"banana": 2,
		"cherry": 3,
		"app":    4,
		"appl":   5,
	}
	for k, v := range keys {
		tr.Insert([]byte(k), v)
	}
	for k, want := range keys {
		got, ok := tr.Search([]byte(k))
		require.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}

	tr.Delete([]byte("app"))
	for k, want := range keys {
		if k == "app" {
			continue
		}
		got, ok := tr.Search([]byte(k))
		require.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}
	_, ok := tr.Search([]byte("app"))
	assert.False(t, ok)
}

func TestKeyThatIsPrefixOfAnotherKey(t *testing.T) {
	tr := art.New()
	tr.Insert([]byte("team"), 1)
	tr.Insert([]byte("teamwork"), 2)

	v, ok := tr.Search([]byte("team"))
	require.True(t, ok)
	assert.Equal(t, node.Value(1), v)

	v, ok = tr.Search([]byte("teamwork"))
	require.True(t, ok)
	assert.Equal(t, node.Value(2), v)

	_, found := tr.Delete([]byte("team"))
	assert.True(t, found)
	_, ok = tr.Search([]byte("team"))
	assert.False(t, ok)

	v, ok = tr.Search([]byte("teamwork"))
	require.True(t, ok)
	assert.Equal(t, node.Value(2), v)
}

func TestVisitYieldsLexicographicOrder(t *testing.T) {
	tr := art.New()
	words := []string{"banana", "apple", "cherry", "apricot", "blueberry"}
	for i, w := range words {
		tr.Insert([]byte(w), node.Value(i+1))
	}

	var got []string
	tr.Visit(func(key []byte, v node.Value) bool {
		got = append(got, string(key))
		return true
	})

	want := append([]string(nil), words...)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestVisitEarlyTermination(t *testing.T) {
	tr := art.New()
	for _, w := range []string{"a", "b", "c", "d"} {
		tr.Insert([]byte(w), 1)
	}
	var got []string
	tr.Visit(func(key []byte, v node.Value) bool {
		got = append(got, string(key))
		return string(key) != "b"
	})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestVisitPrefix(t *testing.T) {
	tr := art.New()
	for _, w := range []string{"car", "cart", "carton", "care", "dog", "door"} {
		tr.Insert([]byte(w), 1)
	}

	var got []string
	tr.VisitPrefix([]byte("car"), func(key []byte, v node.Value) bool {
		got = append(got, string(key))
		return true
	})
	sort.Strings(got)
	assert.Equal(t, []string{"car", "care", "cart", "carton"}, got)

	got = nil
	tr.VisitPrefix([]byte("do"), func(key []byte, v node.Value) bool {
		got = append(got, string(key))
		return true
	})
	sort.Strings(got)
	assert.Equal(t, []string{"dog", "door"}, got)

	got = nil
	tr.VisitPrefix([]byte("zzz"), func(key []byte, v node.Value) bool {
		got = append(got, string(key))
		return true
	})
	assert.Empty(t, got)
}

func TestMemoryNeutralAfterFullDelete(t *testing.T) {
	tr := art.New()
	baseline := tr.Bytes()
	words := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		words = append(words, fmt.Sprintf("word-%d-%x", i, i*2654435761))
	}
	for i, w := range words {
		tr.Insert([]byte(w), node.Value(i+1))
	}
	require.Greater(t, tr.Bytes(), baseline)

	for _, w := range words {
		_, found := tr.Delete([]byte(w))
		assert.True(t, found, w)
	}
	// Bytes returns to its value immediately after New, not to zero: the
	// root survives every delete, even once the tree holds no keys.
	assert.Equal(t, baseline, tr.Bytes())

	var count int
	tr.Visit(func(key []byte, v node.Value) bool {
		count++
		return true
	})
	assert.Equal(t, 0, count)
}

func TestGrowAndShrinkLadderThroughTree(t *testing.T) {
	tr := art.New()
	baseline := tr.Bytes()
	key := func(b byte) []byte { return []byte{'k', b} }

	for i := 0; i < 256; i++ {
		tr.Insert(key(byte(i)), node.Value(i+1))
	}
	for i := 0; i < 256; i++ {
		v, ok := tr.Search(key(byte(i)))
		require.True(t, ok)
		assert.Equal(t, node.Value(i+1), v)
	}

	for i := 255; i >= 1; i-- {
		_, found := tr.Delete(key(byte(i)))
		require.True(t, found)
	}
	v, ok := tr.Search(key(0))
	require.True(t, ok)
	assert.Equal(t, node.Value(1), v)

	_, found := tr.Delete(key(0))
	assert.True(t, found)
	assert.Equal(t, baseline, tr.Bytes())
}
