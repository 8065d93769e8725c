package scalar_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/vmihailenco/msgpack.v2"

	"github.com/taibuivan/steamreviews/internal/core/scalar"
)

type playtime struct {
	Forever    scalar.Minutes       `json:"playtime_forever" msgpack:"playtime_forever"`
	LastPlayed scalar.UnixTimestamp `json:"last_played" msgpack:"last_played"`
}

/*
TestMinutes_RoundTrip checks that Minutes survives JSON and msgpack unchanged at the edges of uint32.
*/
func TestMinutes_RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 59, 1 << 16, math.MaxUint32} {
		m := scalar.Minutes(n)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, m.String(), string(data))

		var fromJSON scalar.Minutes
		require.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.Equal(t, m, fromJSON)

		packed, err := msgpack.Marshal(m)
		require.NoError(t, err)

		var fromMsgpack scalar.Minutes
		require.NoError(t, msgpack.Unmarshal(packed, &fromMsgpack))
		assert.Equal(t, n, uint32(fromMsgpack))
	}
}

/*
TestUnixTimestamp_RoundTrip does the same for the full int64 range.
*/
func TestUnixTimestamp_RoundTrip(t *testing.T) {
	for _, n := range []int64{math.MinInt64, -86400, 0, 1700000000, math.MaxInt64} {
		ts := scalar.UnixTimestamp(n)

		data, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.Equal(t, ts.String(), string(data))

		var fromJSON scalar.UnixTimestamp
		require.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.Equal(t, n, fromJSON.Int64())

		packed, err := msgpack.Marshal(ts)
		require.NoError(t, err)

		var fromMsgpack scalar.UnixTimestamp
		require.NoError(t, msgpack.Unmarshal(packed, &fromMsgpack))
		assert.Equal(t, n, fromMsgpack.Int64())
	}
}

/*
TestMinutes_RejectsOutOfRange checks that the integer decoder, not the wrapper, refuses bad input.
*/
func TestMinutes_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"negative", `{"playtime_forever":-1}`},
		{"overflow", `{"playtime_forever":4294967296}`},
		{"fraction", `{"playtime_forever":1.5}`},
		{"quoted", `{"playtime_forever":"10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p playtime
			assert.Error(t, json.Unmarshal([]byte(tt.input), &p))
		})
	}
}

/*
TestMinutes_RejectsOutOfRangeMsgpack checks that msgpack integers outside uint32 fail instead of wrapping.
*/
func TestMinutes_RejectsOutOfRangeMsgpack(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"negative", int64(-1)},
		{"just over", uint64(math.MaxUint32) + 1},
		{"large", int64(1) << 40},
		{"uint64 max", uint64(math.MaxUint64)},
		{"float", 1.5},
		{"string", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := msgpack.Marshal(tt.value)
			require.NoError(t, err)

			var m scalar.Minutes
			assert.Error(t, msgpack.Unmarshal(packed, &m))
			assert.Zero(t, m)

			var c scalar.Count
			assert.Error(t, msgpack.Unmarshal(packed, &c))
		})
	}
}

func TestUnixTimestamp_RejectsOutOfRangeMsgpack(t *testing.T) {
	packed, err := msgpack.Marshal(uint64(math.MaxUint64))
	require.NoError(t, err)

	var ts scalar.UnixTimestamp
	assert.Error(t, msgpack.Unmarshal(packed, &ts))

	packed, err = msgpack.Marshal(uint64(math.MaxInt64))
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(packed, &ts))
	assert.Equal(t, int64(math.MaxInt64), ts.Int64())
}

func TestCount(t *testing.T) {
	for _, n := range []uint32{0, 127, 128, 1 << 20, math.MaxUint32} {
		c := scalar.Count(n)

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, c.String(), string(data))

		packed, err := msgpack.Marshal(c)
		require.NoError(t, err)

		var out scalar.Count
		require.NoError(t, msgpack.Unmarshal(packed, &out))
		assert.Equal(t, c, out)
	}

	var c scalar.Count
	assert.Error(t, json.Unmarshal([]byte(`-3`), &c))
	require.NoError(t, c.Scan(int64(7)))
	assert.Equal(t, scalar.Count(7), c)
	assert.Error(t, c.Scan(int64(-1)))

	value, err := scalar.Count(9).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(9), value)
}

func TestStruct_RoundTrip(t *testing.T) {
	in := playtime{Forever: 12345, LastPlayed: 1699999999}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"playtime_forever":12345,"last_played":1699999999}`, string(data))

	packed, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out playtime
	require.NoError(t, msgpack.Unmarshal(packed, &out))
	assert.Equal(t, in, out)
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 90*time.Minute, scalar.Minutes(90).Duration())
	assert.Equal(t, "4294967295", scalar.Minutes(math.MaxUint32).String())

	ts := scalar.UnixTimestamp(-1)
	assert.Equal(t, int64(-1), ts.Int64())
	assert.Equal(t, "-1", ts.String())
	assert.Equal(t, time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), ts.Time())
}

/*
TestSQL_ValueScan checks the database/sql hooks of both types.
*/
func TestSQL_ValueScan(t *testing.T) {
	value, err := scalar.Minutes(math.MaxUint32).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxUint32), value)

	var m scalar.Minutes
	require.NoError(t, m.Scan(int64(42)))
	assert.Equal(t, scalar.Minutes(42), m)
	assert.Error(t, m.Scan(int64(-1)))
	assert.Error(t, m.Scan(int64(math.MaxUint32)+1))
	assert.Error(t, m.Scan("42"))

	value, err = scalar.UnixTimestamp(-5).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), value)

	var ts scalar.UnixTimestamp
	require.NoError(t, ts.Scan(int64(math.MinInt64)))
	assert.Equal(t, int64(math.MinInt64), ts.Int64())
	assert.Error(t, ts.Scan(3.5))
}
