// Package globals holds values stamped in at build time.
package globals

// Version is set with -ldflags "-X github.com/tigrisdata-community/flashhop/globals.Version=...".
var Version = "devel"
