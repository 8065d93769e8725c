package language

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// DecodeError is returned by every decoding hook in this package.
//
// It wraps [ErrUnknownLanguage] so callers can match it with [errors.Is], and
// names the field being decoded when the caller supplied one through [Decode].
type DecodeError struct {
	// Field is the name of the field that failed, if known.
	Field string
	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "language: decode: " + e.Err.Error()
	}
	return "language: decode " + e.Field + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses s as the value of field. It differs from [Parse] only in the
// error it returns, which is a [*DecodeError] naming field.
func Decode(field, s string) (Language, error) {
	l, err := Parse(s)
	if err != nil {
		return All, &DecodeError{Field: field, Err: err}
	}
	return l, nil
}

// # Text and JSON

// MarshalText implements [encoding.TextMarshaler]. JSON encodes l as its wire
// form through this method.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("language: encode %s: %w", l, ErrUnknownLanguage)
	}
	return []byte(catalog[l].wire), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := Decode("", string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// # Msgpack

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (l Language) EncodeMsgpack(enc *msgpack.Encoder) error {
	text, err := l.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (l *Language) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}

// # SQL

// Value implements [driver.Valuer]. Languages are stored as their wire form.
func (l Language) Value() (driver.Value, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan implements [sql.Scanner].
func (l *Language) Scan(src any) error {
	switch value := src.(type) {
	case string:
		return l.UnmarshalText([]byte(value))
	case []byte:
		return l.UnmarshalText(value)
	default:
		return fmt.Errorf("language: cannot scan %T", src)
	}
}
