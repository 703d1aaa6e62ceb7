// Package testsupport loads the markdown fixtures and golden files shared by
// package tests.
package testsupport

import (
	"encoding/json"
	"os"
)

// LoadFixture reads a fixture verbatim.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden decodes the JSON golden file at path into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
