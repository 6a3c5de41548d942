package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	c := New(100)
	c.Put("a", []byte("hello"))

	val, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), val)
	assert.Equal(t, 1, c.Len())
	assert.EqualValues(t, 5, c.Bytes())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestEvictsOldestFirst(t *testing.T) {
	c := New(10)
	c.Put("a", make([]byte, 4))
	c.Put("b", make([]byte, 4))
	c.Put("c", make([]byte, 4))

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.EqualValues(t, 8, c.Bytes())
}

func TestGetDoesNotRefreshOrder(t *testing.T) {
	c := New(10)
	c.Put("a", make([]byte, 4))
	c.Put("b", make([]byte, 4))
	c.Get("a")
	// "a" is still the oldest insertion despite the read
	c.Put("c", make([]byte, 4))

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestReplaceMovesKeyToNewest(t *testing.T) {
	c := New(10)
	c.Put("a", make([]byte, 4))
	c.Put("b", make([]byte, 4))
	c.Put("a", make([]byte, 4))
	c.Put("c", make([]byte, 4))

	// "b" became the oldest once "a" was rewritten
	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestOversizedEntryEvictsEverything(t *testing.T) {
	c := New(10)
	c.Put("a", make([]byte, 4))
	c.Put("big", make([]byte, 20))

	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.Bytes())
}
