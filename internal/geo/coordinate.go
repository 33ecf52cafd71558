package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("coordinate is not numeric")

// Coordinate is a latitude or longitude as sent by mobile clients, which
// post either JSON numbers or numeric strings. Parsing is deferred so that
// the caller decides whether a malformed value matters.
type Coordinate struct {
	raw string
	set bool
}

func NewCoordinate(v float64) Coordinate {
	return Coordinate{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

func (c Coordinate) IsSet() bool {
	return c.set
}

func (c Coordinate) Float() (float64, error) {
	if !c.set {
		return 0, ErrNotNumeric
	}
	v, err := strconv.ParseFloat(c.raw, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return v, nil
}

// Ptr returns the parsed value, or nil when absent or malformed.
func (c Coordinate) Ptr() *float64 {
	v, err := c.Float()
	if err != nil {
		return nil
	}
	return &v
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*c = Coordinate{}
			return nil
		}
		*c = Coordinate{raw: s, set: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Coordinate{raw: n.String(), set: true}
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	v, err := c.Float()
	if err != nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
