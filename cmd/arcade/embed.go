package main

import "embed"

// configFS holds the default settings, boards and command scripts
//
//go:embed configs
var configFS embed.FS
