// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package codec defines the wire formats the API can read request bodies from
and write responses in.

A [Codec] pairs a [Marshaler] with an [Unmarshaler] for one media type. The
package ships JSON and msgpack; [ForContentType] and [ForAccept] pick one from
HTTP headers.
*/
package codec

import (
	"encoding/json"
	"mime"
	"strconv"
	"strings"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Marshaler produces the byte representation of a value.
type Marshaler func(v any) ([]byte, error)

// Unmarshaler decodes a byte representation into target.
type Unmarshaler func(data []byte, target any) error

// Codec is implemented by every wire format the API supports.
type Codec interface {
	// MediaType is the canonical media type, without parameters.
	MediaType() string
	Marshaler() Marshaler
	Unmarshaler() Unmarshaler
}

const (
	MediaTypeJSON    = "application/json"
	MediaTypeMsgpack = "application/msgpack"
)

type jsonCodec struct{}

func (jsonCodec) MediaType() string { return MediaTypeJSON }

func (jsonCodec) Marshaler() Marshaler {
	return func(v any) ([]byte, error) { return json.Marshal(v) }
}

func (jsonCodec) Unmarshaler() Unmarshaler {
	return func(data []byte, target any) error { return json.Unmarshal(data, target) }
}

type msgpackCodec struct{}

func (msgpackCodec) MediaType() string { return MediaTypeMsgpack }

func (msgpackCodec) Marshaler() Marshaler {
	return func(v any) ([]byte, error) { return msgpack.Marshal(v) }
}

func (msgpackCodec) Unmarshaler() Unmarshaler {
	return func(data []byte, target any) error { return msgpack.Unmarshal(data, target) }
}

// JSON returns the JSON codec. It is the default for both directions.
func JSON() Codec { return jsonCodec{} }

// Msgpack returns the msgpack codec.
func Msgpack() Codec { return msgpackCodec{} }

// registry maps every accepted media type, aliases included, to its codec.
var registry = map[string]Codec{
	MediaTypeJSON:             JSON(),
	MediaTypeMsgpack:          Msgpack(),
	"application/x-msgpack":   Msgpack(),
	"application/vnd.msgpack": Msgpack(),
}

// ForContentType returns the codec for a Content-Type header value. An empty
// header means JSON. The boolean is false for an unsupported media type.
func ForContentType(contentType string) (Codec, bool) {
	if strings.TrimSpace(contentType) == "" {
		return JSON(), true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, false
	}
	c, ok := registry[mediaType]
	return c, ok
}

// ForAccept returns the first supported codec listed in an Accept header, in
// header order. Wildcards and an empty header select JSON. The boolean is false
// when the header lists only unsupported types.
//
// Quality values are not ranked, but entries with q=0 are refused and skipped.
func ForAccept(accept string) (Codec, bool) {
	if strings.TrimSpace(accept) == "" {
		return JSON(), true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || refused(params) {
			continue
		}
		if mediaType == "*/*" || mediaType == "application/*" {
			return JSON(), true
		}
		if c, ok := registry[mediaType]; ok {
			return c, true
		}
	}
	return nil, false
}

// refused reports whether an Accept entry carries q=0.
func refused(params map[string]string) bool {
	q, ok := params["q"]
	if !ok {
		return false
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
	return err == nil && weight == 0
}
