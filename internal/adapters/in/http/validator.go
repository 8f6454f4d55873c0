package http

import (
	"errors"
	"net/http"
	"strings"

	"housebuilder/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// apiPrefix is the part of the URL space described by the OpenAPI document.
const apiPrefix = "/api/"

// requestValidator rejects requests under apiPrefix that do not match the
// OpenAPI document, before they reach a handler.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Host matching is left to the deployment.
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{MultiError: false}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) {
				return next(c)
			}

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return routeError(c, findErr)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return c.JSON(http.StatusBadRequest, api.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(validateErr),
				})
			}

			return next(c)
		}
	}, nil
}

func routeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, routers.ErrMethodNotAllowed):
		return c.JSON(http.StatusMethodNotAllowed, api.Error{
			Code:    http.StatusMethodNotAllowed,
			Message: "Method not allowed",
		})
	default:
		return c.JSON(http.StatusNotFound, api.Error{
			Code:    http.StatusNotFound,
			Message: "Route not found",
		})
	}
}

// validationMessage keeps the first line of a kin-openapi error; the rest is
// a dump of the schema.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "Invalid parameter " + reqErr.Parameter.Name + ": " + firstLine(reqErr.Err)
		}
		if reqErr.RequestBody != nil {
			return "Invalid request body: " + firstLine(reqErr.Err)
		}
	}
	return firstLine(err)
}

func firstLine(err error) string {
	if err == nil {
		return "Invalid request"
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
