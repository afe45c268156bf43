package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput writes value as indented JSON, or one compact line per element
// for slices in JSONL mode.
func WriteOutput(out io.Writer, value any) error {
	if IsJSONLOutput() {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice {
			encoder := json.NewEncoder(out)
			for i := 0; i < rv.Len(); i++ {
				if err := encoder.Encode(rv.Index(i).Interface()); err != nil {
					return fmt.Errorf("encode output: %w", err)
				}
			}
			return nil
		}
		if err := json.NewEncoder(out).Encode(value); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
