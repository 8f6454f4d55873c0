// Package api holds the HTTP contract of the service: the embedded OpenAPI
// document, the request and response types it describes, and the echo
// wiring that binds its operations to a ServerInterface.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yml
var openapiDocument []byte

// Defines values for Variant.
const (
	Standard Variant = "Standard"
	Luxury   Variant = "Luxury"
)

// Defines values for Stage.
const (
	Empty         Stage = "Empty"
	FoundationSet Stage = "FoundationSet"
	WallsSet      Stage = "WallsSet"
	Complete      Stage = "Complete"
)

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// House defines model for House.
type House struct {
	Description string             `json:"description"`
	Foundation  string             `json:"foundation"`
	Id          openapi_types.UUID `json:"id"`
	Roof        string             `json:"roof"`
	Stage       Stage              `json:"stage"`
	Variant     Variant            `json:"variant"`
	Walls       string             `json:"walls"`
}

// HouseOrder defines model for HouseOrder.
type HouseOrder struct {
	Id openapi_types.UUID `json:"id"`
}

// NewHouse defines model for NewHouse.
type NewHouse struct {
	Variant Variant `json:"variant"`
}

// Stage defines model for Stage.
type Stage string

// Variant defines model for Variant.
type Variant string

// CreateHouseJSONRequestBody defines body for CreateHouse for application/json ContentType.
type CreateHouseJSONRequestBody = NewHouse

// OrderHouseJSONRequestBody defines body for OrderHouse for application/json ContentType.
type OrderHouseJSONRequestBody = NewHouse

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all houses
	// (GET /api/v1/houses)
	GetHouses(ctx echo.Context) error
	// Build a house right away
	// (POST /api/v1/houses)
	CreateHouse(ctx echo.Context) error
	// Queue a house for the construction job
	// (POST /api/v1/houses/orders)
	OrderHouse(ctx echo.Context) error
	// Get one house
	// (GET /api/v1/houses/{houseId})
	GetHouse(ctx echo.Context, houseId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHouses converts echo context to params.
func (w *ServerInterfaceWrapper) GetHouses(ctx echo.Context) error {
	return w.Handler.GetHouses(ctx)
}

// CreateHouse converts echo context to params.
func (w *ServerInterfaceWrapper) CreateHouse(ctx echo.Context) error {
	return w.Handler.CreateHouse(ctx)
}

// OrderHouse converts echo context to params.
func (w *ServerInterfaceWrapper) OrderHouse(ctx echo.Context) error {
	return w.Handler.OrderHouse(ctx)
}

// GetHouse converts echo context to params.
func (w *ServerInterfaceWrapper) GetHouse(ctx echo.Context) error {
	var houseId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "houseId", ctx.Param("houseId"), &houseId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter houseId: %s", err))
	}

	return w.Handler.GetHouse(ctx, houseId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/houses", wrapper.GetHouses)
	router.POST(baseURL+"/api/v1/houses", wrapper.CreateHouse)
	router.POST(baseURL+"/api/v1/houses/orders", wrapper.OrderHouse)
	router.GET(baseURL+"/api/v1/houses/:houseId", wrapper.GetHouse)
}

// GetSwagger parses and validates the embedded OpenAPI document. Every call
// returns a fresh copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}
