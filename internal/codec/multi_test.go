package codec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/internal/codec"
)

func ExampleSplit() {
	records, _ := codec.Split(`{"$value":"a}"} {"Number":1,"Sub":{"X":2}}{"$value":"\\"}`)
	for _, r := range records {
		fmt.Println(r)
	}
	// Output:
	// {"$value":"a}"}
	// {"Number":1,"Sub":{"X":2}}
	// {"$value":"\\"}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace", " \n\t", nil},
		{"single", `{"a":1}`, []string{`{"a":1}`}},
		{"nested", `{"a":{"b":{}}}{}`, []string{`{"a":{"b":{}}}`, `{}`}},
		{"brace in string", `{"a":"{"}{"b":"}"}`, []string{`{"a":"{"}`, `{"b":"}"}`}},
		{"escaped quote", `{"a":"\"}"}{}`, []string{`{"a":"\"}"}`, `{}`}},
		{"escaped backslash", `{"a":"x\\"}{"b":1}`, []string{`{"a":"x\\"}`, `{"b":1}`}},
		{"unicode", `{"a":"héllo"}{"b":"世界"}`, []string{`{"a":"héllo"}`, `{"b":"世界"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := codec.Split(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestSplit_Unbalanced(t *testing.T) {
	for _, text := range []string{`{`, `}`, `{"a":"}`, `{}x`, `"a"`, `{}}{`} {
		t.Run(text, func(t *testing.T) {
			_, err := codec.Split(text)
			require.ErrorIs(t, err, codec.ErrUnbalanced)
		})
	}
}

func TestConcat_SplitRoundTrip(t *testing.T) {
	c := newCodec(nil)

	values := []string{"Sometadasdasdsadsadsad\\", "Haha you got joked els{\\}", "", "\"quoted\""}

	records := make([]string, 0, len(values))
	for _, v := range values {
		text, err := c.Encode(v)
		require.NoError(t, err)

		records = append(records, text)
	}

	parts, err := codec.Split(codec.Concat(records))
	require.NoError(t, err)
	require.Len(t, parts, len(values))

	for i, part := range parts {
		var out string
		require.NoError(t, c.Decode(part, &out))
		assert.Equal(t, values[i], out)
	}
}
