package http

import (
	"context"
	"errors"
	"net/http"

	"housebuilder/internal/adapters/in/http/api"
	"housebuilder/internal/core/application/usecases/commands"
	"housebuilder/internal/core/application/usecases/queries"
	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case ports consumed by the server.
type (
	HouseConstructor interface {
		Handle(ctx context.Context, cmd commands.ConstructHouseCommand) (*house.House, error)
	}

	HouseOrderer interface {
		Handle(ctx context.Context, cmd commands.OrderHouseCommand) error
	}

	HouseLister interface {
		Handle(ctx context.Context, query queries.GetAllHousesQuery) ([]queries.HouseResponse, error)
	}

	HouseGetter interface {
		Handle(ctx context.Context, query queries.GetHouseQuery) (queries.HouseResponse, error)
	}
)

var _ api.ServerInterface = (*Server)(nil)

// Server implements api.ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	constructHouseHandler HouseConstructor
	orderHouseHandler     HouseOrderer

	// Query handlers
	getAllHousesHandler HouseLister
	getHouseHandler     HouseGetter
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	constructHouseHandler HouseConstructor,
	orderHouseHandler HouseOrderer,
	getAllHousesHandler HouseLister,
	getHouseHandler HouseGetter,
) *Server {
	return &Server{
		constructHouseHandler: constructHouseHandler,
		orderHouseHandler:     orderHouseHandler,
		getAllHousesHandler:   getAllHousesHandler,
		getHouseHandler:       getHouseHandler,
	}
}

// GetHouses handles GET /api/v1/houses - retrieves all houses.
func (s *Server) GetHouses(ctx echo.Context) error {
	houses, err := s.getAllHousesHandler.Handle(ctx.Request().Context(), queries.NewGetAllHousesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve houses",
		})
	}

	response := make([]api.House, len(houses))
	for i, h := range houses {
		response[i] = fromResponse(h)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateHouse handles POST /api/v1/houses - builds a house immediately.
func (s *Server) CreateHouse(ctx echo.Context) error {
	variant, errResp := bindVariant(ctx)
	if errResp != nil {
		return ctx.JSON(http.StatusBadRequest, errResp)
	}

	cmd, err := commands.NewConstructHouseCommand(kernel.NewUUID(), variant)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid house data: " + err.Error(),
		})
	}

	built, err := s.constructHouseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to construct house",
		})
	}

	return ctx.JSON(http.StatusCreated, fromDomain(built))
}

// OrderHouse handles POST /api/v1/houses/orders - queues a house for the
// construction job.
func (s *Server) OrderHouse(ctx echo.Context) error {
	variant, errResp := bindVariant(ctx)
	if errResp != nil {
		return ctx.JSON(http.StatusBadRequest, errResp)
	}

	houseID := kernel.NewUUID()
	cmd, err := commands.NewOrderHouseCommand(houseID, variant)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.orderHouseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to queue house order",
		})
	}

	return ctx.JSON(http.StatusAccepted, api.HouseOrder{Id: houseID.GoogleUUID()})
}

// GetHouse handles GET /api/v1/houses/{houseId} - retrieves one house.
func (s *Server) GetHouse(ctx echo.Context, houseId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(houseId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid house ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetHouseQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid house ID: " + err.Error(),
		})
	}

	resp, err := s.getHouseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, api.Error{
				Code:    http.StatusNotFound,
				Message: "House not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve house",
		})
	}

	return ctx.JSON(http.StatusOK, fromResponse(resp))
}

func bindVariant(ctx echo.Context) (house.Variant, *api.Error) {
	var body api.NewHouse
	if err := ctx.Bind(&body); err != nil {
		return house.UnknownVariant, &api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		}
	}

	variant, err := house.ParseVariant(string(body.Variant))
	if err != nil {
		return house.UnknownVariant, &api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid variant: " + err.Error(),
		}
	}

	return variant, nil
}

func fromDomain(h *house.House) api.House {
	return api.House{
		Id:          h.ID().GoogleUUID(),
		Variant:     api.Variant(h.Variant().String()),
		Foundation:  h.Foundation(),
		Walls:       h.Walls(),
		Roof:        h.Roof(),
		Stage:       api.Stage(h.Stage().String()),
		Description: h.Description(),
	}
}

func fromResponse(r queries.HouseResponse) api.House {
	return api.House{
		Id:          r.ID.GoogleUUID(),
		Variant:     api.Variant(r.Variant.String()),
		Foundation:  r.Foundation,
		Walls:       r.Walls,
		Roof:        r.Roof,
		Stage:       api.Stage(r.Stage.String()),
		Description: r.Description,
	}
}
