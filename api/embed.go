// Package api embeds the OpenAPI description of the HTTP interface.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by the HTTP adapter.
//
//go:embed openapi.yaml
var Spec []byte
