package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a record to a JSON file.
func WriteJSON(record Record, filename string) error {
	data, err := ToJSON(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write parameter file: %w", err)
	}
	return nil
}

// ReadJSON reads a record from a JSON file. Unknown fields are rejected:
// a parameter file that does not round-trip exactly is a parameter file
// that cannot be trusted to replay a run.
func ReadJSON(filename string) (Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read parameter file: %w", err)
	}
	record, err := FromJSON(data)
	if err != nil {
		return Record{}, fmt.Errorf("parameter file %s: %w", filename, err)
	}
	return record, nil
}

// ToJSON serializes a record to indented JSON.
func ToJSON(record Record) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parameters: %w", err)
	}
	return data, nil
}

// FromJSON parses a record from JSON bytes, rejecting unknown fields.
func FromJSON(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var record Record
	if err := dec.Decode(&record); err != nil {
		return Record{}, fmt.Errorf("failed to parse parameters: %w", err)
	}
	return record, nil
}
