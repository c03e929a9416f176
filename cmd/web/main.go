package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"

	"github.com/facebookgo/flagenv"
	_ "github.com/joho/godotenv/autoload"
	"github.com/tigrisdata-community/flashhop/globals"
	"github.com/tigrisdata-community/flashhop/internal"
)

var (
	bind      = flag.String("bind", ":4000", "TCP host:port to bind on")
	debugBind = flag.String("debug-bind", "127.0.0.1:4001", "TCP host:port for metrics and the log level endpoint")
	flashSkin = flag.String("flash-skin", "bootstrap", "skin used to render flash messages (bootstrap, plain)")
	slogLevel = flag.String("slog-level", "INFO", "log level")
)

func main() {
	flagenv.Parse()
	flag.Parse()

	internal.InitSlog(*slogLevel)

	s, err := New(Options{
		Skin: *flashSkin,
	})
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	s.register(mux)

	var h http.Handler = mux
	h = s.requestMiddleware(h)

	debugMux := http.NewServeMux()
	s.registerDebug(debugMux)
	go func() {
		slog.Info("debug listener", "addr", *debugBind)
		log.Fatal(http.ListenAndServe(*debugBind, debugMux))
	}()

	slog.Info("now listening", "url", "http://localhost"+*bind, "skin", *flashSkin, "version", globals.Version)
	log.Fatal(http.ListenAndServe(*bind, h))
}
