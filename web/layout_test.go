package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPreviewFormFields(t *testing.T) {
	var buf bytes.Buffer
	if err := PreviewForm().Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, name := range []string{"title", "content", "type", "hops", "delay", "important", "now", "keep"} {
		if !strings.Contains(out, `name="`+name+`"`) {
			t.Errorf("form has no %q input:\n%s", name, out)
		}
	}
}

func TestNotFoundEscapesPath(t *testing.T) {
	var buf bytes.Buffer
	if err := NotFound("/<b>").Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<p>Nothing lives at <code>/&lt;b&gt;</code>.</p>" {
		t.Errorf("got %s", got)
	}
}
