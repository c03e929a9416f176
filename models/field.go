package models

import (
	"fmt"
	"math"
)

//go:generate go tool stringer -type=Field -linecomment

// Field names one of the fixed set of flash message fields.
type Field uint8

const (
	FieldTitle     Field = iota // title
	FieldContent                // content
	FieldType                   // type
	FieldHops                   // hops
	FieldDelay                  // delay
	FieldImportant              // important
)

type fieldAccessor struct {
	get func(m *FlashMessage) any
	set func(m *FlashMessage, value any) error
}

var accessors = [...]fieldAccessor{
	FieldTitle: {
		get: func(m *FlashMessage) any { return stringOrNil(m.title) },
		set: func(m *FlashMessage, value any) error {
			s, err := asString(FieldTitle, value)
			if err != nil {
				return err
			}
			m.Title(s)
			return nil
		},
	},
	FieldContent: {
		get: func(m *FlashMessage) any { return stringOrNil(m.content) },
		set: func(m *FlashMessage, value any) error {
			s, err := asString(FieldContent, value)
			if err != nil {
				return err
			}
			m.Content(s)
			return nil
		},
	},
	FieldType: {
		get: func(m *FlashMessage) any { return stringOrNil(m.typ) },
		set: func(m *FlashMessage, value any) error {
			s, err := asString(FieldType, value)
			if err != nil {
				return err
			}
			m.Type(s)
			return nil
		},
	},
	FieldHops: {
		get: func(m *FlashMessage) any { return m.hops },
		set: func(m *FlashMessage, value any) error {
			n, err := asInt(FieldHops, value)
			if err != nil {
				return err
			}
			return m.SetHops(n)
		},
	},
	FieldDelay: {
		get: func(m *FlashMessage) any { return m.delay },
		set: func(m *FlashMessage, value any) error {
			n, err := asInt(FieldDelay, value)
			if err != nil {
				return err
			}
			return m.SetDelay(n)
		},
	},
	FieldImportant: {
		get: func(m *FlashMessage) any { return m.important },
		set: func(m *FlashMessage, value any) error {
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%w: %s wants bool, got %T", ErrInvalidValue, FieldImportant, value)
			}
			m.Important(b)
			return nil
		},
	},
}

// ParseField looks up a field by its name.
func ParseField(name string) (Field, bool) {
	for f := FieldTitle; f <= FieldImportant; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// Has reports whether key names a flash message field.
func (m *FlashMessage) Has(key string) bool {
	_, ok := ParseField(key)
	return ok
}

// Get returns the current value of the named field. Unset text fields are
// returned as nil.
func (m *FlashMessage) Get(key string) (any, error) {
	f, ok := ParseField(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidArgument, key)
	}
	return accessors[f].get(m), nil
}

// Set assigns the named field through its setter, so hops and delay are
// validated. Errors are returned directly and are not reported by Err.
func (m *FlashMessage) Set(key string, value any) error {
	f, ok := ParseField(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidArgument, key)
	}
	return accessors[f].set(m, value)
}

// Unset does nothing. Fields can be reassigned but never removed.
func (m *FlashMessage) Unset(string) {}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func asString(f Field, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrInvalidValue, f, value)
	}
}

// asInt accepts any integer kind, plus integral float64 values as produced
// by encoding/json.
func asInt(f Field, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			break
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			break
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("%w: %s wants an integer, got %T(%v)", ErrInvalidValue, f, value, value)
}
