package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The conversational platform is loose about parameter types: numeric entities arrive as
// JSON numbers, free text as strings, and either may be null. These types accept both
// spellings and fall back to the zero value on null.

// FlexString decodes from a JSON string or number
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isJSONNull(data) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("flex string: unsupported value %s", data)
	}
	if f == math.Trunc(f) {
		*s = FlexString(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*s = FlexString(data)
	return nil
}

// String returns the plain string value
func (s FlexString) String() string {
	return string(s)
}

// FlexInt decodes from a JSON number or a numeric string. Fractions are truncated.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	f, err := parseFlexNumber(data)
	if err != nil {
		return fmt.Errorf("flex int: %w", err)
	}
	*n = FlexInt(int(f))
	return nil
}

// FlexFloat decodes from a JSON number or a numeric string
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, err := parseFlexNumber(data)
	if err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	*f = FlexFloat(v)
	return nil
}

func parseFlexNumber(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if isJSONNull(data) {
		return 0, nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, err
		}
		raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if raw == "" {
			return 0, nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("unsupported value %s", data)
	}
	return v, nil
}

func isJSONNull(data []byte) bool {
	return len(data) == 0 || string(data) == "null"
}

// Null always encodes as JSON null. Session parameters set to null are cleared by the platform.
type Null struct{}

// MarshalJSON implements json.Marshaler
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
