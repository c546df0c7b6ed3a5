package vector

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"sync"
)

// A Store represents a collection of vectors keyed by string. A Store can be
// used simultaneously from multiple goroutines.
type Store[T any] struct {
	m  map[string]*Vector[T]
	mu sync.RWMutex
}

// NewStore creates and initializes a new Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[string]*Vector[T])}
}

// New creates and adds a new empty vector to the store using capacity as its
// capacity and key as its identifier. If a vector already exists for the
// identifier it is silently replaced with the new vector.
func (s *Store[T]) New(capacity int, key string) {
	s.mu.Lock()
	s.m[key] = New[T](capacity)
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier. If a vector
// already exists for the identifier it is silently replaced with the new
// vector.
func (s *Store[T]) Add(key string, x *Vector[T]) {
	s.mu.Lock()
	s.m[key] = x.Clone()
	s.mu.Unlock()
}

// Get returns a copy of the vector associated to key. The second return
// value is true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Vector[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.Clone(), true
}

// Delete removes the vector associated to key from the store.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Keys returns the identifiers known in the store.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, len(s.m))
	i := 0
	for k := range s.m {
		keys[i] = k
		i++
	}
	return keys
}

// Update applies fn to the vector associated to key while holding the store
// write lock, returning an error if the key does not exist or the error
// returned by fn. Mutations performed by fn are visible to subsequent reads.
func (s *Store[T]) Update(key string, fn func(*Vector[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, ok := s.m[key]
	if !ok {
		return errors.New("key does not exist")
	}
	return fn(x)
}

// Dump allows to export the store as a slice of bytes using marshal to
// encode individual elements. Unlike the Bytes method of Vector, the
// encoding produced by Dump carries the capacity of each vector so that Load
// can reconstruct the store exactly.
func (s *Store[T]) Dump(marshal func(T) ([]byte, error)) ([]byte, error) {
	var buf bytes.Buffer
	s.mu.RLock()
	defer s.mu.RUnlock()
	container := make([]byte, binary.MaxVarintLen64)
	for k, v := range s.m {
		payload, err := v.Bytes(marshal)
		if err != nil {
			return nil, err
		}
		n := binary.PutUvarint(container, uint64(len(k)))
		buf.Write(container[:n])
		buf.WriteString(k)
		n = binary.PutUvarint(container, uint64(v.Cap()))
		buf.Write(container[:n])
		n = binary.PutUvarint(container, uint64(len(payload)))
		buf.Write(container[:n])
		buf.Write(payload)
	}
	return buf.Bytes(), nil
}

// Load loads the content of a store previously exported using the Dump
// method, using unmarshal to decode individual elements. The current content
// of the store is replaced.
func (s *Store[T]) Load(data []byte, unmarshal func([]byte) (T, error)) error {
	m := make(map[string]*Vector[T])
	i := 0
	for i < len(data) {
		size, n, err := readSize(data, i)
		if err != nil {
			return err
		}
		i = n
		key := string(data[i : i+size])
		i += size
		capacity, n, err := readUvarint(data, i)
		if err != nil {
			return err
		}
		i = n
		size, n, err = readSize(data, i)
		if err != nil {
			return err
		}
		i = n
		m[key], err = NewFromBytes(capacity, data[i:i+size], unmarshal)
		if err != nil {
			return err
		}
		i += size
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	return nil
}

// readUvarint decodes a varint encoded value at offset i in data, returning
// the value and the offset of the byte following it. It returns an error if
// the varint is malformed or if the value does not fit in an int.
func readUvarint(data []byte, i int) (int, int, error) {
	v, n := binary.Uvarint(data[i:])
	if n <= 0 || v > math.MaxInt {
		return 0, 0, errors.New("vector: cannot decode the store")
	}
	return int(v), i + n, nil
}

// readSize decodes a varint encoded byte count at offset i in data, also
// checking that the count does not point past the end of data.
func readSize(data []byte, i int) (int, int, error) {
	v, n, err := readUvarint(data, i)
	if err != nil {
		return 0, 0, err
	}
	if v > len(data)-n {
		return 0, 0, errors.New("vector: cannot decode the store")
	}
	return v, n, nil
}
