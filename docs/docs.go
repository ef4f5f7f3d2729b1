// Package docs embebe la descripción OpenAPI que sirve el swagger UI.
// El documento se mantiene a mano; la superficie es chica.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
