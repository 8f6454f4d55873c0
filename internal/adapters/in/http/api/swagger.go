package api

import (
	"encoding/json"

	"github.com/swaggo/swag"
)

// docReader serves the embedded OpenAPI document to swag, which is where
// echo-swagger reads doc.json from.
type docReader struct{}

func (docReader) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, docReader{})
}
