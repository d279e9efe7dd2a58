package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/feral-file/ff-marketplace/internal/domain"
)

// Identifier names an item either by numeric id or by title
type Identifier struct {
	Raw string
	// Numeric is set when Raw parses as a base 10 integer
	Numeric *int64
}

// IsNumeric reports whether the identifier parsed as an integer
func (i Identifier) IsNumeric() bool {
	return i.Numeric != nil
}

// NewNumericIdentifier builds an identifier from an integer id
func NewNumericIdentifier(id int64) Identifier {
	return Identifier{Raw: strconv.FormatInt(id, 10), Numeric: &id}
}

// ParseIdentifier accepts a JSON number or a JSON string.
// Missing, null, empty and zero values are rejected.
func ParseIdentifier(raw json.RawMessage) (Identifier, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Identifier{}, invalidIdentifier()
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return Identifier{}, invalidIdentifier()
	}

	switch v := value.(type) {
	case json.Number:
		n, ok := integralNumber(v)
		if !ok || n == 0 {
			return Identifier{}, invalidIdentifier()
		}
		return NewNumericIdentifier(n), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return Identifier{}, invalidIdentifier()
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Identifier{Raw: s, Numeric: &n}, nil
		}
		return Identifier{Raw: s}, nil
	default:
		return Identifier{}, invalidIdentifier()
	}
}

// integralNumber accepts integers written in any JSON number form, such as 7.0 or 7e0
func integralNumber(v json.Number) (int64, bool) {
	if n, err := v.Int64(); err == nil {
		return n, true
	}
	f, err := v.Float64()
	if err != nil || f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

func invalidIdentifier() error {
	return domain.NewError(domain.ErrorKindValidation, "catalog.ParseIdentifier", "Missing or invalid trackId", nil)
}
