package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type header struct {
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	in := header{Type: "Uint16", Capacity: 42}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data := MustMarshal(c, in)
			assert.JSONEq(t, `{"type":"Uint16","capacity":42}`, string(data))

			var out header
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"go-json", "json"}, Names())
}

func TestAppend(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		out, err := Append(c, []byte("x"), header{Type: "Bool"})
		require.NoError(t, err)
		assert.Equal(t, `x{"type":"Bool","capacity":0}`, string(out), c.Name())
	}

	_, isAppender := Codec(GoJSON{}).(Appender)
	assert.True(t, isAppender)

	out, err := Append(JSON{}, []byte("x"), make(chan int))
	assert.Error(t, err)
	assert.Equal(t, "x", string(out))
}

func TestMustMarshalPanics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(nil, make(chan int)) })
}
