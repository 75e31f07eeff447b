package servers

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiSpec []byte

// SwaggerInfo is the document served by the Swagger UI under /swagger/.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Bakery orders API",
	Description:      "Order lifecycle of the bakery's B2B ordering portal.",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	InfoInstanceName: swag.Name,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var registerOnce sync.Once

// GetSwagger parses the embedded OpenAPI document. Callers own the returned value.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}

// RegisterSwaggerDoc publishes the OpenAPI document to swag so echo-swagger
// can serve it. Later calls are no-ops.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	body, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding openapi document: %w", err)
	}
	registerOnce.Do(func() {
		SwaggerInfo.SwaggerTemplate = string(body)
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})
	return nil
}
