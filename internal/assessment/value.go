package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindNone valueKind = iota
	kindNumber
	kindText
	kindList
	kindInvalid
)

// Value is an answer payload: a rating, a selected option or a set of
// selected options. The zero Value means "not answered". A payload of any
// other shape decodes to an invalid Value that scores as a wrong type.
type Value struct {
	kind valueKind
	num  float64
	text string
	list []string
}

// Invalid wraps a payload that is neither a number, text nor a list of
// options. raw is kept for reporting.
func Invalid(raw string) Value { return Value{kind: kindInvalid, text: raw} }

// IsValid reports whether the payload has a supported shape
func (v Value) IsValid() bool { return v.kind != kindInvalid }

func Number(n float64) Value { return Value{kind: kindNumber, num: n} }

func Text(s string) Value { return Value{kind: kindText, text: s} }

func List(items ...string) Value {
	return Value{kind: kindList, list: slices.Clone(items)}
}

// IsZero reports whether the value carries no answer. An empty selection
// counts as no answer.
func (v Value) IsZero() bool {
	switch v.kind {
	case kindNone:
		return true
	case kindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// Number returns the numeric payload. Text that parses as a number is
// accepted so "4" and 4 rate the same. NaN and infinities are not numbers
// here.
func (v Value) Number() (float64, bool) {
	var n float64
	switch v.kind {
	case kindNumber:
		n = v.num
	case kindText:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Option returns the value as a single option key. Numbers use their shortest
// decimal form so a numeric 32 matches the option "32".
func (v Value) Option() (string, bool) {
	switch v.kind {
	case kindText:
		return v.text, true
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case kindList:
		if len(v.list) == 1 {
			return v.list[0], true
		}
	}
	return "", false
}

// Items returns the value as a list of option keys
func (v Value) Items() []string {
	switch v.kind {
	case kindList:
		return slices.Clone(v.list)
	case kindText, kindNumber:
		opt, _ := v.Option()
		return []string{opt}
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return strconv.Quote(v.text)
	case kindList:
		return fmt.Sprintf("%q", v.list)
	case kindInvalid:
		return v.text
	default:
		return "<none>"
	}
}

// Equal reports whether two values carry the same payload
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.text == o.text && slices.Equal(v.list, o.list)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindNumber:
		return json.Marshal(v.num)
	case kindText:
		return json.Marshal(v.text)
	case kindList:
		return json.Marshal(v.list)
	case kindInvalid:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a string or a list of strings and numbers.
// Booleans, objects and lists holding anything else decode to an invalid
// Value so one bad answer does not reject the whole answer set. Only
// malformed JSON is an error.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for _, item := range raw {
			switch x := item.(type) {
			case string:
				items = append(items, x)
			case float64:
				items = append(items, strconv.FormatFloat(x, 'f', -1, 64))
			default:
				*v = Invalid(string(data))
				return nil
			}
		}
		*v = Value{kind: kindList, list: items}
	case '{', 't', 'f':
		if !json.Valid(data) {
			return fmt.Errorf("malformed answer value %s", data)
		}
		*v = Invalid(string(data))
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("answer value must be a number, string or list: %w", err)
		}
		*v = Number(n)
	}
	return nil
}
