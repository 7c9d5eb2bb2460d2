// Package schemas holds the embedded JSON Schemas for input files.
package schemas

import _ "embed"

// PredictionsSchemaJSON is the JSON Schema for prediction record files.
//
//go:embed predictions.schema.json
var PredictionsSchemaJSON string
