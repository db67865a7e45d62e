// Package web holds the fixed HTML documents served by the site.
package web

import "embed"

//go:embed pages/*.html
var Pages embed.FS
