package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a string field decoded leniently: any JSON scalar is accepted and
// kept as its literal text, while null, objects and arrays decode to "".
type Text string

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// IsZero reports whether the field is absent or empty.
func (t Text) IsZero() bool {
	return t == ""
}

// Or returns t, or fallback when t is empty.
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
		*t = ""
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		if b {
			*t = Text(fmt.Sprint(b))
		} else {
			*t = ""
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

// AppList decodes a JSON array of apps; any other JSON value decodes to an
// empty list.
type AppList []AppEntry

// UnmarshalJSON implements json.Unmarshaler.
func (l *AppList) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if !isArray(data) || json.Unmarshal(data, &entries) != nil {
		*l = nil
		return nil
	}

	out := make(AppList, 0, len(entries))
	for _, raw := range entries {
		var app AppEntry
		if isObject(raw) {
			if err := json.Unmarshal(raw, &app); err != nil {
				return err
			}
		}
		out = append(out, app)
	}
	*l = out
	return nil
}

// VersionList decodes a JSON array of versions; any other JSON value decodes
// to an empty list.
type VersionList []VersionEntry

// UnmarshalJSON implements json.Unmarshaler.
func (l *VersionList) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if !isArray(data) || json.Unmarshal(data, &entries) != nil {
		*l = nil
		return nil
	}

	out := make(VersionList, 0, len(entries))
	for _, raw := range entries {
		var v VersionEntry
		if isObject(raw) {
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			v.Valid = true
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
