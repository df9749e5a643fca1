package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Parse extracts float64 values from free text. Tokens are separated by
// commas or any whitespace; tokens that do not parse as numbers are collected
// into skipped rather than aborting the scan.
func Parse(text string) (values []float64, skipped []string) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			skipped = append(skipped, field)
			continue
		}
		values = append(values, v)
	}

	return values, skipped
}

// Read consumes r to EOF and parses the contents with [Parse].
func Read(r io.Reader) (values []float64, skipped []string, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: read input: %w", err)
	}

	values, skipped = Parse(string(text))
	return values, skipped, nil
}
