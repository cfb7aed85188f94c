package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContextLines is the number of unchanged lines kept around each change.
// AllContext keeps every line.
type ContextLines int

// AllContext disables context trimming.
const AllContext ContextLines = -1

const allContextKeyword = "all"

// IsAll reports whether every unchanged line is shown.
func (c ContextLines) IsAll() bool {
	return c < 0
}

func (c ContextLines) String() string {
	if c.IsAll() {
		return allContextKeyword
	}
	return strconv.Itoa(int(c))
}

// ParseContextLines accepts "all" or a non-negative integer.
func ParseContextLines(s string) (ContextLines, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == allContextKeyword || s == "" {
		return AllContext, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("context lines must be %q or an integer, got %q", allContextKeyword, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("context lines must not be negative, use %q to show every line, got %d", allContextKeyword, n)
	}
	return ContextLines(n), nil
}

// MarshalYAML writes "all" or the number.
func (c ContextLines) MarshalYAML() (interface{}, error) {
	if c.IsAll() {
		return allContextKeyword, nil
	}
	return int(c), nil
}

// UnmarshalYAML reads "all" or a number.
func (c *ContextLines) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseContextLines(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON writes "all" or the number.
func (c ContextLines) MarshalJSON() ([]byte, error) {
	if c.IsAll() {
		return json.Marshal(allContextKeyword)
	}
	return json.Marshal(int(c))
}

// UnmarshalJSON reads "all" or a number.
func (c *ContextLines) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseContextLines(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("context lines must be %q or an integer: %w", allContextKeyword, err)
	}
	if n < 0 {
		return fmt.Errorf("context lines must not be negative, use %q to show every line, got %d", allContextKeyword, n)
	}
	*c = ContextLines(n)
	return nil
}
