package scalar

import (
	"database/sql/driver"
	"strconv"
	"time"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Minutes is a duration counted in whole minutes, as Steam reports playtime.
type Minutes uint32

// String renders m as a bare decimal integer.
func (m Minutes) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

// Duration converts m to a [time.Duration].
func (m Minutes) Duration() time.Duration {
	return time.Duration(m) * time.Minute
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (m Minutes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint32(uint32(m))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (m *Minutes) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := decodeUint32(dec)
	if err != nil {
		return err
	}
	*m = Minutes(n)
	return nil
}

// Value implements [driver.Valuer].
func (m Minutes) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements [sql.Scanner].
func (m *Minutes) Scan(src any) error {
	n, err := scanUint32(src, "Minutes")
	if err != nil {
		return err
	}
	*m = Minutes(n)
	return nil
}
