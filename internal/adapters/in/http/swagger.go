package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// swaggerDoc serves a pre-rendered OpenAPI document to the swag registry.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// registerSwaggerDoc makes the document available to the Swagger UI handler.
// The swag registry is global and rejects duplicate names, so only the first
// document is registered.
func registerSwaggerDoc(swagger *openapi3.T) error {
	data, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI document: %w", err)
	}

	registerSwagger.Do(func() {
		if swag.GetSwagger(swag.Name) == nil {
			swag.Register(swag.Name, swaggerDoc{json: string(data)})
		}
	})
	return nil
}
