package model

import (
	"encoding/json"
)

// Envelope is the API's uniform success response wrapper.
type Envelope struct {
	// e.g.: "success"
	Status string `json:"status,omitempty"`
	// Payload ; shape varies per operation
	Data json.RawMessage `json:"data,omitempty"`
	// Optional list size hint
	Count int `json:"count,omitempty"`
	// Optional human-readable note
	Message string `json:"message,omitempty"`
}

// UnwrapData returns the [data] member of an enveloped payload,
// or the payload itself unchanged when no envelope is present.
func UnwrapData(payload json.RawMessage) json.RawMessage {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(payload, &object); err == nil {
		if data, ok := object["data"]; ok {
			return data
		}
	}
	return payload
}

// UnwrapList applies UnwrapData and decodes the result as a sequence of [T].
// Any shape mismatch yields an empty sequence, never an error.
func UnwrapList[T any](payload json.RawMessage) []T {
	data := UnwrapData(payload)
	var list []T
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []T{}
	}
	return list
}

// UnwrapObject applies UnwrapData and decodes the result as a single [T] object.
// Any shape mismatch yields nil, never an error.
func UnwrapObject[T any](payload json.RawMessage) *T {
	data := UnwrapData(payload)
	// MUST: JSON object
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return nil
	}
	if object == nil {
		// JSON null
		return nil
	}
	row := new(T)
	if err := json.Unmarshal(data, row); err != nil {
		return nil
	}
	return row
}
