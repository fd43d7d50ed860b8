package model

import (
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when the top-level JSON value is not an object.
var ErrNotObject = errors.New("source document is not a JSON object")

// Decode parses a source document from JSON. Malformed JSON and non-object
// documents are errors; malformed optional fields are not.
func Decode(data []byte) (*SourceDocument, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if !isObject(raw) {
		return nil, ErrNotObject
	}

	var doc SourceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
