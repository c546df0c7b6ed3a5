package vector

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalJSON encodes the vector as a JSON array of its elements. The array
// holds exactly Len elements; free slots are never emitted.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.data[:v.length])
}

// UnmarshalJSON decodes a JSON array into the vector, replacing its current
// content. The vector capacity is left unchanged and an error wrapping
// ErrCapacityExceeded is returned if the array holds more elements than the
// vector can hold.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) > len(v.data) {
		return fmt.Errorf("vector: sequence of %d elements exceeds capacity %d: %w", len(values), len(v.data), ErrCapacityExceeded)
	}
	clear(v.data)
	copy(v.data, values)
	v.length = len(values)
	return nil
}

// Bytes returns the encoded vector using marshal to encode individual
// elements. The encoding holds the element count followed by each element
// framed by its size, all sizes varint encoded. The capacity of the vector
// is not part of the encoding.
func (v *Vector[T]) Bytes(marshal func(T) ([]byte, error)) ([]byte, error) {
	var buf bytes.Buffer
	container := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(container, uint64(v.length))
	buf.Write(container[:n])
	for i := 0; i < v.length; i++ {
		data, err := marshal(v.data[i])
		if err != nil {
			return nil, err
		}
		n = binary.PutUvarint(container, uint64(len(data)))
		buf.Write(container[:n])
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// NewFromBytes creates a new Vector of the given capacity using data, an
// encoded vector, as its initial content and unmarshal to decode individual
// elements. It returns an error wrapping ErrCapacityExceeded if the encoded
// vector holds more elements than capacity, or a plain error if data is not
// a valid encoding.
func NewFromBytes[T any](capacity int, data []byte, unmarshal func([]byte) (T, error)) (*Vector[T], error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errors.New("vector: cannot decode element count")
	}
	if count > uint64(capacity) {
		return nil, fmt.Errorf("vector: sequence of %d elements exceeds capacity %d: %w", count, capacity, ErrCapacityExceeded)
	}
	v := New[T](capacity)
	i := n
	for j := uint64(0); j < count; j++ {
		size, n := binary.Uvarint(data[i:])
		if n <= 0 {
			return nil, errors.New("vector: cannot decode element size")
		}
		i += n
		if size > uint64(len(data)-i) {
			return nil, errors.New("vector: truncated element data")
		}
		x, err := unmarshal(data[i : i+int(size)])
		if err != nil {
			return nil, err
		}
		i += int(size)
		v.data[j] = x
		v.length++
	}
	return v, nil
}
