package vector

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalInt(x int) ([]byte, error) {
	return strconv.AppendInt(nil, int64(x), 10), nil
}

func unmarshalInt(data []byte) (int, error) {
	return strconv.Atoi(string(data))
}

func TestStoreNew(t *testing.T) {
	store := NewStore[int]()
	store.New(4, "s1")
	got, ok := store.m["s1"]
	require.True(t, ok, "key should exist in store")
	assert.True(t, Equal(got, New[int](4)))
}

func TestStoreAdd(t *testing.T) {
	store := NewStore[int]()
	want := NewFromValues(4, []int{1, 2})
	store.Add("s1", want)
	got, ok := store.m["s1"]
	require.True(t, ok, "key should exist in store")
	require.NotSame(t, want, got)
	assert.True(t, Equal(got, want))
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[int]()
	store.New(4, "s1")
	store.Delete("s1")
	_, ok := store.m["s1"]
	assert.False(t, ok, "key should not exist in store")
}

func TestStoreGet(t *testing.T) {
	store := NewStore[int]()
	want := NewFromValues(4, []int{1, 2})
	store.Add("s1", want)
	got, ok := store.Get("s1")
	require.True(t, ok)
	require.NotSame(t, want, got)
	assert.True(t, Equal(got, want))
	_, ok = store.Get("s2")
	assert.False(t, ok)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore[int]()
	store.New(3, "s1")
	err := store.Update("s1", func(v *Vector[int]) error {
		v.Push(7)
		return nil
	})
	require.NoError(t, err)
	got, ok := store.Get("s1")
	require.True(t, ok)
	x, ok := got.Last()
	require.True(t, ok)
	assert.Equal(t, 7, x)

	err = store.Update("s2", func(v *Vector[int]) error { return nil })
	assert.Error(t, err)

	boom := errors.New("boom")
	err = store.Update("s1", func(v *Vector[int]) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStoreKeys(t *testing.T) {
	store := NewStore[int]()
	store.New(4, "k1")
	store.Add("k2", NewFromValues(2, []int{1}))
	assert.ElementsMatch(t, []string{"k1", "k2"}, store.Keys())
}

func TestStoreDumpLoad(t *testing.T) {
	src := NewStore[int]()
	src.Add("k1", NewFromValues(5, []int{1, 2, 3}))
	src.Add("k11", NewFromValues(2, []int{9}))
	src.Add("k2", New[int](7))
	dump, err := src.Dump(marshalInt)
	require.NoError(t, err)
	dst := NewStore[int]()
	require.NoError(t, dst.Load(dump, unmarshalInt))
	require.Equal(t, len(src.m), len(dst.m))
	for k, v := range src.m {
		w, ok := dst.m[k]
		require.True(t, ok, "key %s should exist in store", k)
		assert.True(t, Equal(v, w), "key %s", k)
		assert.Equal(t, v.Cap(), w.Cap(), "key %s", k)
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	tests := []struct {
		id   int
		data []byte
	}{
		{1, []byte{0x5, 'k'}},
		{2, []byte{0x1, 'k', 0x4}},
		{3, []byte{0x1, 'k', 0x4, 0x9, 0x1}},
		{4, []byte{0x1, 'k', 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x1, 0x1, 0x0}},
	}
	for _, tt := range tests {
		store := NewStore[int]()
		var err error
		require.NotPanics(t, func() {
			err = store.Load(tt.data, unmarshalInt)
		}, "test %d", tt.id)
		assert.Error(t, err, "test %d", tt.id)
	}
}
