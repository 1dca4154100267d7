package peaks

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteTable writes a line table to a JSON file.
func WriteTable(table *Table, filename string) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal line table: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write line table: %w", err)
	}
	return nil
}

// ReadTable reads a line table from a JSON file and checks that it covers
// the element registry.
func ReadTable(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read line table: %w", err)
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse line table %s: %w", filename, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("line table %s: %w", filename, err)
	}
	return &table, nil
}
