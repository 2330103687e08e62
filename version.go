package graft

// Version is the library version reported by the CLI.
// Overridden at build time via -ldflags for tagged releases.
var Version = "0.1.0"
