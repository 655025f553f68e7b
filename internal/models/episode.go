package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Episode represents a single episode of a show
type Episode struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Season SeasonLabel `json:"season"`
	Number int         `json:"number"`
}

// SeasonLabel is the season an episode belongs to. The catalog defines its form:
// it is usually a number but some sources send it as a string.
type SeasonLabel string

// String returns the label as displayed
func (s SeasonLabel) String() string {
	return string(s)
}

// UnmarshalJSON accepts both JSON numbers and JSON strings
func (s *SeasonLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("season label is null")
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SeasonLabel(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("season label must be a number or a string: %w", err)
	}
	if n, err := num.Int64(); err == nil {
		*s = SeasonLabel(strconv.FormatInt(n, 10))
		return nil
	}
	*s = SeasonLabel(num.String())
	return nil
}

// MarshalJSON writes numeric labels as numbers so the original form round-trips
func (s SeasonLabel) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(string(s)); err == nil {
		return []byte(s), nil
	}
	return json.Marshal(string(s))
}
