package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses the embedded OpenAPI document and validates it.
//
// Returns:
//   - the document describing every route registered by RegisterHandlers
//   - an error if the document does not parse or is not valid OpenAPI 3
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// swaggerDoc hands the OpenAPI document to the swag registry read by echo-swagger.
type swaggerDoc struct {
	json string
}

// ReadDoc implements swag.Swagger.
func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	errSwagger  error
)

// registerSwaggerDoc publishes the document under swag.Name. swag panics on a second
// registration under one name, so this runs once per process.
func registerSwaggerDoc() error {
	swaggerOnce.Do(func() {
		doc, err := LoadOpenAPI(context.Background())
		if err != nil {
			errSwagger = err
			return
		}
		data, err := doc.MarshalJSON()
		if err != nil {
			errSwagger = fmt.Errorf("error encoding OpenAPI document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return errSwagger
}

// bindPathParam binds the path parameter name into dest with the simple style used
// for path parameters in OpenAPI. dest may be a string, an integer or an
// encoding.TextUnmarshaler.
func bindPathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}
