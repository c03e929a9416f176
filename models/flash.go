package models

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

func init() {
	gob.Register(&FlashMessage{})
}

// Common values for the type of a flash message. Type accepts any string;
// these are the ones the bundled skins know how to style.
const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindFailure = "failure"
	KindInfo    = "info"
)

var (
	ErrInvalidHopsAmount = errors.New("models: hops amount must be at least 1")
	ErrInvalidDelay      = errors.New("models: delay must not be negative")
	ErrInvalidArgument   = errors.New("models: not a flash message field")
	ErrInvalidValue      = errors.New("models: wrong value type for flash message field")
)

// Renderer turns the field view of a flash message into markup. The
// template it uses is chosen by the renderer, not by the message.
type Renderer interface {
	RenderFlash(ctx context.Context, w io.Writer, f Fields) error
}

// Fields is the read-only view of a FlashMessage. Field order matches the
// JSON encoding.
type Fields struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Type      *string `json:"type"`
	Hops      int     `json:"hops"`
	Delay     int     `json:"delay"`
	Important bool    `json:"important"`
}

// FlashMessage is a short-lived notification meant to be carried across
// requests by a session store. The store is responsible for counting down
// hops and delay; the message only holds them.
//
// A FlashMessage is not safe for concurrent use.
type FlashMessage struct {
	title     *string
	content   *string
	typ       *string
	hops      int
	delay     int
	important bool

	err error
}

// NewFlashMessage returns a message shown for one request, starting with the
// next one.
func NewFlashMessage() *FlashMessage {
	return &FlashMessage{
		hops:  1,
		delay: 1,
	}
}

func (m *FlashMessage) Title(title string) *FlashMessage {
	m.title = &title
	return m
}

func (m *FlashMessage) Content(content string) *FlashMessage {
	m.content = &content
	return m
}

func (m *FlashMessage) Type(typ string) *FlashMessage {
	m.typ = &typ
	return m
}

// Hops sets how many requests the message stays visible for. Values below 1
// are rejected, leave hops unchanged and are reported by Err.
func (m *FlashMessage) Hops(hops int) *FlashMessage {
	m.record(m.SetHops(hops))
	return m
}

// Delay sets how many requests pass before the message is shown. Negative
// values are rejected, leave delay unchanged and are reported by Err.
func (m *FlashMessage) Delay(delay int) *FlashMessage {
	m.record(m.SetDelay(delay))
	return m
}

// Important flags the message. Called without arguments it sets the flag.
func (m *FlashMessage) Important(important ...bool) *FlashMessage {
	m.important = len(important) == 0 || important[0]
	return m
}

// Now makes the message visible during the current request.
func (m *FlashMessage) Now() *FlashMessage {
	return m.Delay(0)
}

// Keep extends the message by one more request. Hops saturates at
// math.MaxInt.
func (m *FlashMessage) Keep() *FlashMessage {
	if m.hops < math.MaxInt {
		m.hops++
	}
	return m
}

// SetHops is Hops for callers that want the error immediately.
func (m *FlashMessage) SetHops(hops int) error {
	if hops < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHopsAmount, hops)
	}
	m.hops = hops
	return nil
}

// SetDelay is Delay for callers that want the error immediately.
func (m *FlashMessage) SetDelay(delay int) error {
	if delay < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDelay, delay)
	}
	m.delay = delay
	return nil
}

// Err returns the first error raised by a chained setter, if any.
func (m *FlashMessage) Err() error {
	return m.err
}

func (m *FlashMessage) record(err error) {
	if err != nil && m.err == nil {
		m.err = err
	}
}

// Fields returns a snapshot of the message. Later changes to the message do
// not affect it.
func (m *FlashMessage) Fields() Fields {
	return Fields{
		Title:     cloneString(m.title),
		Content:   cloneString(m.content),
		Type:      cloneString(m.typ),
		Hops:      m.hops,
		Delay:     m.delay,
		Important: m.important,
	}
}

// ToMap returns every field keyed by its name. Unset text fields map to nil.
func (m *FlashMessage) ToMap() map[string]any {
	result := make(map[string]any, len(accessors))
	for f := FieldTitle; f <= FieldImportant; f++ {
		result[f.String()] = accessors[f].get(m)
	}
	return result
}

// JSONFlags controls the formatting of ToJSON.
type JSONFlags uint8

const (
	// JSONPretty indents the output with two spaces.
	JSONPretty JSONFlags = 1 << iota
	// JSONUnescapedHTML leaves <, > and & as they are.
	JSONUnescapedHTML
)

// ToJSON encodes the field view. Flags only affect formatting.
func (m *FlashMessage) ToJSON(flags JSONFlags) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(flags&JSONUnescapedHTML == 0)
	if flags&JSONPretty != 0 {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(m.Fields()); err != nil {
		return "", fmt.Errorf("can't encode flash message: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (m *FlashMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Fields())
}

// UnmarshalJSON overwrites the fields present in data, validating hops and
// delay the same way the setters do. Unknown keys are rejected.
func (m *FlashMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, ok := ParseField(key); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidArgument, key)
		}
	}

	f := m.Fields()
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	next := *m
	if err := next.SetHops(f.Hops); err != nil {
		return err
	}
	if err := next.SetDelay(f.Delay); err != nil {
		return err
	}
	next.title = f.Title
	next.content = f.Content
	next.typ = f.Type
	next.important = f.Important

	*m = next
	return nil
}

func (m *FlashMessage) GobEncode() ([]byte, error) {
	return m.MarshalJSON()
}

func (m *FlashMessage) GobDecode(data []byte) error {
	*m = *NewFlashMessage()
	return m.UnmarshalJSON(data)
}

// Render passes the field view to r and returns what it wrote. Errors from
// the renderer are returned as-is.
func (m *FlashMessage) Render(ctx context.Context, r Renderer) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderFlash(ctx, &buf, m.Fields()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
