package spectra

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a spectrum artifact to a JSON file.
func WriteJSON(spectrum *Spectrum, filename string) error {
	data, err := ToJSON(spectrum)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write spectrum: %w", err)
	}
	return nil
}

// ReadJSON reads a spectrum artifact from a JSON file and checks its
// structure.
func ReadJSON(filename string) (*Spectrum, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spectrum: %w", err)
	}
	spectrum, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("spectrum file %s: %w", filename, err)
	}
	return spectrum, nil
}

// ToJSON serializes a spectrum to indented JSON.
func ToJSON(spectrum *Spectrum) ([]byte, error) {
	data, err := json.MarshalIndent(spectrum, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spectrum: %w", err)
	}
	return data, nil
}

// FromJSON parses and validates a spectrum from JSON bytes.
func FromJSON(data []byte) (*Spectrum, error) {
	var spectrum Spectrum
	if err := json.Unmarshal(data, &spectrum); err != nil {
		return nil, fmt.Errorf("failed to parse spectrum: %w", err)
	}
	if err := spectrum.Validate(); err != nil {
		return nil, err
	}
	return &spectrum, nil
}
