package mcp

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList accepts either a JSON array of strings or a JSON string that
// itself encodes such an array. Some clients double-encode list arguments;
// anything unparseable downgrades silently to an empty list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		var inner []string
		if err := json.Unmarshal([]byte(raw), &inner); err == nil {
			*s = inner
			return nil
		}
	}

	*s = nil
	return nil
}

// FlexInt accepts a JSON number or a numeric string. Empty or unparseable
// strings read as zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*f = FlexInt(v)
			return nil
		}
	}

	*f = 0
	return nil
}

// FlexBool accepts a JSON bool or a string; only the string "true"
// (case-insensitive) reads as true.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*f = FlexBool(strings.EqualFold(strings.TrimSpace(raw), "true"))
		return nil
	}

	*f = false
	return nil
}
