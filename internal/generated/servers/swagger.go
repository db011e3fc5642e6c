package servers

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=server.cfg.yaml openapi.yaml

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses the embedded API document and validates it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}
	return doc, nil
}

var echoParam = regexp.MustCompile(`:(\w+)`)

// OpenAPIPath turns an echo route such as /products/:id into the document's
// template /products/{id}.
func OpenAPIPath(echoPath string) string {
	return echoParam.ReplaceAllString(echoPath, "{$1}")
}
