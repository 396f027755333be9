//go:build tools

package tools

// Command-line tools pinned in go.mod: oapi-codegen for `go generate` in
// internal/api, goose for ad hoc migrations outside `techsnap migrate`.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
