// Package schemas embeds the JSON Schemas used to validate structured data files.
package schemas

import _ "embed"

// SeedSchema validates the seed fixtures file.
//
//go:embed seed.schema.json
var SeedSchema string
