package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsArray(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &s))
	require.Equal(t, StringList{"a", "b"}, s)
}

func TestStringListAcceptsEncodedString(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`"[\"a\",\"b\"]"`), &s))
	require.Equal(t, StringList{"a", "b"}, s)
}

func TestStringListDowngradesSilently(t *testing.T) {
	cases := []string{
		`"not json"`,
		`"{\"k\":1}"`,
		`42`,
		`[1,2,3]`,
		`""`,
	}
	for _, input := range cases {
		s := StringList{"stale"}
		require.NoError(t, json.Unmarshal([]byte(input), &s), "input %s", input)
		require.Empty(t, s, "input %s", input)
	}
}

func TestStringListEmptyArray(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &s))
	require.Empty(t, s)
}

func TestFlexInt(t *testing.T) {
	cases := []struct {
		input string
		want  FlexInt
	}{
		{`30`, 30},
		{`"45"`, 45},
		{`" 45 "`, 45},
		{`""`, 0},
		{`"soon"`, 0},
		{`true`, 0},
	}
	for _, tt := range cases {
		var f FlexInt
		require.NoError(t, json.Unmarshal([]byte(tt.input), &f), "input %s", tt.input)
		require.Equal(t, tt.want, f, "input %s", tt.input)
	}
}

func TestFlexBool(t *testing.T) {
	cases := []struct {
		input string
		want  FlexBool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"True"`, true},
		{`"false"`, false},
		{`"yes"`, false},
		{`1`, false},
	}
	for _, tt := range cases {
		var f FlexBool
		require.NoError(t, json.Unmarshal([]byte(tt.input), &f), "input %s", tt.input)
		require.Equal(t, tt.want, f, "input %s", tt.input)
	}
}
