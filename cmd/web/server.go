package main

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tigrisdata-community/flashhop/internal"
	"github.com/tigrisdata-community/flashhop/models"
	"github.com/tigrisdata-community/flashhop/web"
)

// maxKeep is the largest accepted keep form value.
const maxKeep = 100

type Options struct {
	// Skin names the web.Skins template used for HTML previews.
	Skin string
}

func New(opts Options) (*Server, error) {
	if opts.Skin == "" {
		return nil, errors.New("no flash skin configured")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	result := &Server{
		skins:    web.NewSkins(opts.Skin),
		registry: reg,
		metrics:  internal.NewMetrics(reg),
	}

	return result, nil
}

type Server struct {
	skins    *web.Skins
	registry *prometheus.Registry
	metrics  *internal.Metrics
}

func (s *Server) register(mux *http.ServeMux) {
	web.Mount(mux)
	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("/", s.NotFound)
	mux.HandleFunc("POST /flash", s.Flash)
}

// registerDebug mounts operator endpoints. They are meant for a listener
// that is not reachable from the public network.
func (s *Server) registerDebug(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/.within/debug/slog-level", internal.SlogLevel)
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.Page("Flash preview", web.PreviewForm())).ServeHTTP(w, r)
}

// Flash builds a flash message from the posted form and shows it either as
// JSON or rendered through the configured skin.
func (s *Server) Flash(w http.ResponseWriter, r *http.Request) {
	lg := logger(r.Context())

	if err := r.ParseForm(); err != nil {
		lg.Error("can't parse form", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := buildFlash(r.PostForm)
	if err != nil {
		status, reason := http.StatusUnprocessableEntity, "invalid_value"
		if errors.Is(err, models.ErrInvalidArgument) {
			status, reason = http.StatusBadRequest, "unknown_field"
		}
		s.metrics.Rejected.WithLabelValues(reason).Inc()
		lg.Debug("rejected flash message", "err", err)
		http.Error(w, err.Error(), status)
		return
	}

	if wantsJSON(r) {
		var flags models.JSONFlags
		if pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty")); pretty {
			flags |= models.JSONPretty
		}

		body, err := msg.ToJSON(flags)
		if err != nil {
			lg.Error("can't encode flash message", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		s.metrics.Rendered.WithLabelValues("json").Inc()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, body)
		return
	}

	out, err := msg.Render(r.Context(), s.skins)
	if err != nil {
		lg.Error("can't render flash message", "skin", s.skins.Name(), "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.Rendered.WithLabelValues("html").Inc()
	templ.Handler(web.Page("Flash preview", templ.Raw(out))).ServeHTTP(w, r)
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	templ.Handler(
		web.Page("Not found: "+r.URL.Path, web.NotFound(r.URL.Path)),
		templ.WithStatus(http.StatusNotFound),
	).ServeHTTP(w, r)
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "json" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

// buildFlash applies form values in key order, so now runs after delay and
// keep runs after hops. Only the first value of each key is used.
func buildFlash(form url.Values) (*models.FlashMessage, error) {
	msg := models.NewFlashMessage()

	for _, key := range slices.Sorted(maps.Keys(form)) {
		raw := form.Get(key)

		switch key {
		case "now":
			now, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: now: %v", models.ErrInvalidValue, err)
			}
			if now {
				msg.Now()
			}
			continue
		case "keep":
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || n > maxKeep {
				return nil, fmt.Errorf("%w: keep must be between 0 and %d, got %q", models.ErrInvalidValue, maxKeep, raw)
			}
			for range n {
				msg.Keep()
			}
			continue
		}

		f, ok := models.ParseField(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidArgument, key)
		}

		value, err := parseFormValue(f, raw)
		if err != nil {
			return nil, err
		}

		if err := msg.Set(key, value); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

func parseFormValue(f models.Field, raw string) (any, error) {
	switch f {
	case models.FieldHops, models.FieldDelay:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidValue, f, err)
		}
		return n, nil
	case models.FieldImportant:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidValue, f, err)
		}
		return b, nil
	default:
		return raw, nil
	}
}
