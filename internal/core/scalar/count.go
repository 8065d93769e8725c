package scalar

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Count is a non-negative tally Steam reports as a 32-bit integer: votes,
// comments, games owned, reviews written.
type Count uint32

// String renders c as a bare decimal integer.
func (c Count) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (c Count) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint32(uint32(c))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (c *Count) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := decodeUint32(dec)
	if err != nil {
		return err
	}
	*c = Count(n)
	return nil
}

// Value implements [driver.Valuer].
func (c Count) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan implements [sql.Scanner].
func (c *Count) Scan(src any) error {
	n, err := scanUint32(src, "Count")
	if err != nil {
		return err
	}
	*c = Count(n)
	return nil
}
