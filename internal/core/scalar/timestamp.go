package scalar

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// UnixTimestamp is a count of seconds since the Unix epoch. Negative values
// are dates before 1970.
type UnixTimestamp int64

// String renders t as a bare decimal integer.
func (t UnixTimestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// Int64 returns the raw number of seconds.
func (t UnixTimestamp) Int64() int64 {
	return int64(t)
}

// Time converts t to a UTC [time.Time].
func (t UnixTimestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (t UnixTimestamp) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(int64(t))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (t *UnixTimestamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := decodeInt64(dec)
	if err != nil {
		return err
	}
	*t = UnixTimestamp(n)
	return nil
}

// Value implements [driver.Valuer].
func (t UnixTimestamp) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan implements [sql.Scanner].
func (t *UnixTimestamp) Scan(src any) error {
	n, ok := src.(int64)
	if !ok {
		return fmt.Errorf("scalar: cannot scan %T into UnixTimestamp", src)
	}
	*t = UnixTimestamp(n)
	return nil
}
