// Package website holds the content of the Hands-on Solution Architect wiki.
package website

import "embed"

//go:embed wiki.yaml docs blog static src
var FS embed.FS

//go:embed wiki.yaml
var Config []byte
