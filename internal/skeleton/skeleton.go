// Package skeleton bundles the default PHP package template with the binary.
package skeleton

import "embed"

// Root is the directory inside FS that holds the template tree.
const Root = "files"

// FS holds the bundled template, dotfiles included.
//
//go:embed all:files
var FS embed.FS
