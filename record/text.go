package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a free-text field. It decodes from any JSON scalar; null and
// missing values decode to the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := scalar(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// String returns the field with surrounding white space removed.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// Empty reports whether the field has no visible content.
func (t Text) Empty() bool { return t.String() == "" }

// Or returns the field, or def when the field is empty.
func (t Text) Or(def string) string {
	if t.Empty() {
		return def
	}
	return t.String()
}

// UnmarshalJSON accepts either a bare scalar or an object with a "point"
// key.
func (h *Highlight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			Point Text `json:"point"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("record: highlight: %w", err)
		}
		h.Point = obj.Point
		return nil
	}
	s, err := scalar(b)
	if err != nil {
		return fmt.Errorf("record: highlight: %w", err)
	}
	h.Point = Text(s)
	return nil
}

func scalar(b []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("record: expected a scalar, got %T", v)
	}
}
