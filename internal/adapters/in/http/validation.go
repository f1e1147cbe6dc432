package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"workorders/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc with 400 before
// they reach a handler. Requests for paths doc does not describe pass through.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(ctx)
		}
	}, nil
}

// validationMessage condenses a kin-openapi error into one line without the
// schema dump.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	var schemaErr *openapi3.SchemaError

	if !errors.As(err, &schemaErr) {
		return err.Error()
	}

	detail := schemaErr.Reason
	if ptr := schemaErr.JSONPointer(); len(ptr) > 0 {
		detail = strings.Join(ptr, ".") + ": " + detail
	}

	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			return fmt.Sprintf("parameter %q in %s: %s", reqErr.Parameter.Name, reqErr.Parameter.In, detail)
		case reqErr.RequestBody != nil:
			return "request body: " + detail
		}
	}

	return detail
}
