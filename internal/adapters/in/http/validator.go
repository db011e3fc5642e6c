package http

import (
	"net/http"

	"retail/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks parameters and bodies against the API document
// before a handler runs. Routes the document does not describe pass through.
// Security is enforced by Authenticate, not here.
func RequestValidator(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := servers.OpenAPIPath(ctx.Path())
			item := doc.Paths.Value(path)
			if item == nil {
				return next(ctx)
			}
			req := ctx.Request()
			op := item.GetOperation(req.Method)
			if op == nil {
				return next(ctx)
			}

			names, values := ctx.ParamNames(), ctx.ParamValues()
			params := make(map[string]string, len(names))
			for i, name := range names {
				if i < len(values) {
					params[name] = values[i]
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: params,
				Route: &routers.Route{
					Spec:      doc,
					Path:      path,
					PathItem:  item,
					Method:    req.Method,
					Operation: op,
				},
				Options: options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return next(ctx)
		}
	}
}
