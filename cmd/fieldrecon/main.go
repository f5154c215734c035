// Package main provides the entry point for the fieldrecon CLI tool.
package main

import (
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/cmd/fieldrecon/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
