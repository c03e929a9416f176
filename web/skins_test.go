package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/tigrisdata-community/flashhop/models"
)

func TestBuiltinSkins(t *testing.T) {
	msg := models.NewFlashMessage().Title("Saved").Content("Profile <updated>").Type(models.KindSuccess).Important()

	for _, tt := range []struct {
		skin string
		want string
	}{
		{"bootstrap", `<div class="alert alert-success alert-dismissible" role="alert"><strong>Saved</strong><p>Profile &lt;updated&gt;</p></div>`},
		{"plain", `<div class="flash flash-success flash-important" role="alert"><strong>Saved</strong><p>Profile &lt;updated&gt;</p></div>`},
	} {
		t.Run(tt.skin, func(t *testing.T) {
			got, err := msg.Render(context.Background(), NewSkins(tt.skin))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestSkinDefaultsToInfo(t *testing.T) {
	got, err := models.NewFlashMessage().Content("hi").Render(context.Background(), NewSkins("plain"))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div class="flash flash-info" role="alert"><p>hi</p></div>` {
		t.Errorf("got %s", got)
	}
}

func TestEscapesType(t *testing.T) {
	got, err := models.NewFlashMessage().Type(`x" onclick="evil`).Render(context.Background(), NewSkins("bootstrap"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, `" onclick="`) {
		t.Errorf("type attribute not escaped: %s", got)
	}
}

func TestUnknownSkin(t *testing.T) {
	_, err := models.NewFlashMessage().Title("x").Render(context.Background(), NewSkins("missing"))
	if !errors.Is(err, ErrUnknownSkin) {
		t.Errorf("err = %v, want ErrUnknownSkin", err)
	}
}

func TestRegister(t *testing.T) {
	s := NewSkins("shout")
	s.Register("shout", func(f models.Fields) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, strings.ToUpper(*f.Title))
			return err
		})
	})

	got, err := models.NewFlashMessage().Title("careful").Render(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "CAREFUL" {
		t.Errorf("got %q", got)
	}
}

func TestPageEmbedsComponent(t *testing.T) {
	s := NewSkins("plain")
	f := models.NewFlashMessage().Title("Saved").Fields()

	var buf bytes.Buffer
	if err := Page("Preview", s.Component(f)).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"<title>Preview</title>", `<strong>Saved</strong>`, "</html>"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}

func TestPagePropagatesRenderError(t *testing.T) {
	err := Page("x", NewSkins("missing").Component(models.Fields{})).Render(context.Background(), io.Discard)
	if !errors.Is(err, ErrUnknownSkin) {
		t.Errorf("err = %v", err)
	}
}
