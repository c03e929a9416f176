package models

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	for f := FieldTitle; f <= FieldImportant; f++ {
		got, ok := ParseField(f.String())
		if !ok || got != f {
			t.Errorf("ParseField(%q) = %v, %v", f.String(), got, ok)
		}
	}

	for _, name := range []string{"", "Title", "err", "id", "hops "} {
		if _, ok := ParseField(name); ok {
			t.Errorf("ParseField(%q) should fail", name)
		}
	}
}

func TestFieldString(t *testing.T) {
	if got := FieldImportant.String(); got != "important" {
		t.Errorf("FieldImportant.String() = %q", got)
	}
	if got := Field(42).String(); got != "Field(42)" {
		t.Errorf("Field(42).String() = %q", got)
	}
}

func TestHas(t *testing.T) {
	msg := NewFlashMessage()
	for _, key := range []string{"title", "content", "type", "hops", "delay", "important"} {
		if !msg.Has(key) {
			t.Errorf("Has(%q) = false", key)
		}
	}
	for _, key := range []string{"err", "render", "Hops", "color"} {
		if msg.Has(key) {
			t.Errorf("Has(%q) = true", key)
		}
	}
}

func TestGetMatchesFields(t *testing.T) {
	msg := NewFlashMessage().Title("t").Type(KindFailure).Hops(2).Now()

	for key, want := range msg.ToMap() {
		got, err := msg.Get(key)
		if err != nil {
			t.Fatalf("Get(%q): %v", key, err)
		}
		if got != want {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
	}

	if got, _ := msg.Get("content"); got != nil {
		t.Errorf("Get(content) on unset = %v, want nil", got)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := NewFlashMessage().Get("color"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Get(color) error = %v", err)
	}
}

func TestSet(t *testing.T) {
	msg := NewFlashMessage()
	for _, tt := range []struct {
		key   string
		value any
		want  any
	}{
		{"title", "Saved", "Saved"},
		{"content", "Your profile was updated.", "Your profile was updated."},
		{"type", KindSuccess, KindSuccess},
		{"hops", 3, 3},
		{"hops", int64(4), 4},
		{"hops", float64(5), 5},
		{"delay", uint8(0), 0},
		{"important", true, true},
	} {
		if err := msg.Set(tt.key, tt.value); err != nil {
			t.Fatalf("Set(%q, %v): %v", tt.key, tt.value, err)
		}
		if got, _ := msg.Get(tt.key); got != tt.want {
			t.Errorf("after Set(%q, %v) Get = %v, want %v", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestSetErrors(t *testing.T) {
	for _, tt := range []struct {
		key   string
		value any
		want  error
	}{
		{"color", "red", ErrInvalidArgument},
		{"", 1, ErrInvalidArgument},
		{"hops", 0, ErrInvalidHopsAmount},
		{"hops", -3, ErrInvalidHopsAmount},
		{"delay", -1, ErrInvalidDelay},
		{"hops", "2", ErrInvalidValue},
		{"hops", 1.5, ErrInvalidValue},
		{"delay", nil, ErrInvalidValue},
		{"important", "yes", ErrInvalidValue},
		{"title", 7, ErrInvalidValue},
	} {
		msg := NewFlashMessage()
		before := msg.ToMap()

		err := msg.Set(tt.key, tt.value)
		if !errors.Is(err, tt.want) {
			t.Errorf("Set(%q, %v) = %v, want %v", tt.key, tt.value, err, tt.want)
		}
		for k, v := range msg.ToMap() {
			if before[k] != v {
				t.Errorf("Set(%q, %v) changed %s from %v to %v", tt.key, tt.value, k, before[k], v)
			}
		}
		if msg.Err() != nil {
			t.Errorf("Set(%q) recorded a chained error: %v", tt.key, msg.Err())
		}
	}
}

func TestUnsetIsNoop(t *testing.T) {
	msg := NewFlashMessage().Title("stay")
	msg.Unset("title")
	msg.Unset("color")

	if got, _ := msg.Get("title"); got != "stay" {
		t.Errorf("title = %v after Unset", got)
	}
}
