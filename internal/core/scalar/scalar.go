// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package scalar holds integer newtypes that mark what a Steam number means.
//
// Each type encodes to exactly the integer it wraps on every wire format this
// service speaks (JSON, msgpack, SQL). Decoding rejects any integer that does
// not fit the wrapped width instead of truncating it.
package scalar

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/vmihailenco/msgpack.v2"
	"gopkg.in/vmihailenco/msgpack.v2/codes"
)

// errOutOfRange is returned by the decoders when an integer does not fit the
// wrapped width.
var errOutOfRange = errors.New("value out of range")

// decodeInt64 reads any msgpack integer exactly. The library's own
// DecodeInt64 reinterprets uint64 values above MaxInt64 as negative.
func decodeInt64(dec *msgpack.Decoder) (int64, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return 0, err
	}

	if code == codes.Uint64 {
		n, err := dec.DecodeUint64()
		if err != nil {
			return 0, err
		}
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("scalar: %d: %w", n, errOutOfRange)
		}
		return int64(n), nil
	}
	return dec.DecodeInt64()
}

// decodeUint32 reads a msgpack integer and rejects it unless it is in
// [0, MaxUint32].
func decodeUint32(dec *msgpack.Decoder) (uint32, error) {
	n, err := decodeInt64(dec)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("scalar: %d: %w", n, errOutOfRange)
	}
	return uint32(n), nil
}

// scanUint32 converts a database integer, rejecting values outside uint32.
func scanUint32(src any, name string) (uint32, error) {
	n, ok := src.(int64)
	if !ok {
		return 0, fmt.Errorf("scalar: cannot scan %T into %s", src, name)
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("scalar: %s %d: %w", name, n, errOutOfRange)
	}
	return uint32(n), nil
}
