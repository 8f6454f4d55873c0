package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "housebuilder/internal/adapters/in/http"
	"housebuilder/internal/adapters/in/http/api"
	"housebuilder/internal/core/application/usecases/commands"
	"housebuilder/internal/core/application/usecases/queries"
	"housebuilder/internal/core/domain/builders"
	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/core/domain/services"
	"housebuilder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHouseConstructor struct{ mock.Mock }

func (m *MockHouseConstructor) Handle(ctx context.Context, cmd commands.ConstructHouseCommand) (*house.House, error) {
	args := m.Called(ctx, cmd)
	h, _ := args.Get(0).(*house.House)
	return h, args.Error(1)
}

type MockHouseOrderer struct{ mock.Mock }

func (m *MockHouseOrderer) Handle(ctx context.Context, cmd commands.OrderHouseCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockHouseLister struct{ mock.Mock }

func (m *MockHouseLister) Handle(ctx context.Context, query queries.GetAllHousesQuery) ([]queries.HouseResponse, error) {
	args := m.Called(ctx, query)
	houses, _ := args.Get(0).([]queries.HouseResponse)
	return houses, args.Error(1)
}

type MockHouseGetter struct{ mock.Mock }

func (m *MockHouseGetter) Handle(ctx context.Context, query queries.GetHouseQuery) (queries.HouseResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.HouseResponse)
	return resp, args.Error(1)
}

type fixture struct {
	e           *echo.Echo
	constructor *MockHouseConstructor
	orderer     *MockHouseOrderer
	lister      *MockHouseLister
	getter      *MockHouseGetter
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		constructor: new(MockHouseConstructor),
		orderer:     new(MockHouseOrderer),
		lister:      new(MockHouseLister),
		getter:      new(MockHouseGetter),
	}

	server := httpadapter.NewServer(f.constructor, f.orderer, f.lister, f.getter)
	e, err := httpadapter.NewRouter(server, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	f.e = e

	t.Cleanup(func() {
		f.constructor.AssertExpectations(t)
		f.orderer.AssertExpectations(t)
		f.lister.AssertExpectations(t)
		f.getter.AssertExpectations(t)
	})

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func builtHouse(t *testing.T, variant house.Variant) *house.House {
	t.Helper()

	b, err := builders.New(variant, nil)
	require.NoError(t, err)
	services.NewHouseDirector(b).ConstructHouse()
	return b.House()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()

	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateHouse_Success(t *testing.T) {
	// Given
	f := newFixture(t)
	luxury := builtHouse(t, house.Luxury)
	f.constructor.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ConstructHouseCommand) bool {
		return cmd.Variant() == house.Luxury
	})).Return(luxury, nil).Once()

	// When
	rec := f.do(http.MethodPost, "/api/v1/houses", `{"variant":"Luxury"}`)

	// Then
	require.Equal(t, http.StatusCreated, rec.Code)

	var body api.House
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, luxury.ID().GoogleUUID(), body.Id)
	assert.Equal(t, api.Luxury, body.Variant)
	assert.Equal(t, api.Complete, body.Stage)
	assert.Equal(t, "Luxury Roof with Solar Panels", body.Roof)
	assert.Equal(t,
		"House with Foundation: Luxury Foundation with Basement, Walls: Luxury Walls with High-Quality Materials, and Roof: Luxury Roof with Solar Panels",
		body.Description,
	)
}

func TestCreateHouse_RejectedByValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown variant", body: `{"variant":"Castle"}`},
		{name: "missing variant", body: `{}`},
		{name: "unexpected field", body: `{"variant":"Standard","floors":3}`},
		{name: "not json", body: `variant=Standard`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/api/v1/houses", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, int32(http.StatusBadRequest), body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestCreateHouse_HandlerError(t *testing.T) {
	f := newFixture(t)
	f.constructor.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable")).Once()

	rec := f.do(http.MethodPost, "/api/v1/houses", `{"variant":"Standard"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to construct house", decodeError(t, rec).Message)
}

func TestOrderHouse_Accepted(t *testing.T) {
	f := newFixture(t)
	var ordered commands.OrderHouseCommand
	f.orderer.On("Handle", mock.Anything, mock.AnythingOfType("commands.OrderHouseCommand")).
		Run(func(args mock.Arguments) {
			ordered = args.Get(1).(commands.OrderHouseCommand)
		}).
		Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/houses/orders", `{"variant":"Standard"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body api.HouseOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ordered.HouseID().GoogleUUID(), body.Id)
	assert.Equal(t, house.Standard, ordered.Variant())
}

func TestOrderHouse_HandlerError(t *testing.T) {
	f := newFixture(t)
	f.orderer.On("Handle", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	rec := f.do(http.MethodPost, "/api/v1/houses/orders", `{"variant":"Luxury"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetHouses(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.lister.On("Handle", mock.Anything, mock.Anything).Return([]queries.HouseResponse{
		{
			ID:          id,
			Variant:     house.Standard,
			Foundation:  "Standard Foundation",
			Stage:       house.FoundationSet,
			Description: "House with Foundation: Standard Foundation, Walls: , and Roof: ",
		},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/houses", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body []api.House
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, id.GoogleUUID(), body[0].Id)
	assert.Equal(t, api.FoundationSet, body[0].Stage)
	assert.Empty(t, body[0].Walls)
}

func TestGetHouses_Empty(t *testing.T) {
	f := newFixture(t)
	f.lister.On("Handle", mock.Anything, mock.Anything).Return([]queries.HouseResponse{}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/houses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetHouse(t *testing.T) {
	standard := builtHouse(t, house.Standard)

	tests := []struct {
		name       string
		result     queries.HouseResponse
		err        error
		wantStatus int
	}{
		{
			name: "found",
			result: queries.HouseResponse{
				ID:          standard.ID(),
				Variant:     standard.Variant(),
				Foundation:  standard.Foundation(),
				Walls:       standard.Walls(),
				Roof:        standard.Roof(),
				Stage:       standard.Stage(),
				Description: standard.Description(),
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			err:        errs.NewObjectNotFoundError("houseId", standard.ID().String()),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.getter.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetHouseQuery) bool {
				return q.HouseID().IsEqual(standard.ID())
			})).Return(tt.result, tt.err).Once()

			rec := f.do(http.MethodGet, "/api/v1/houses/"+standard.ID().String(), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body api.House
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, standard.Description(), body.Description)
			}
		})
	}
}

func TestGetHouse_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/houses/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
}

func TestUnknownAPIRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/villas", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwaggerDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/v1/houses/{houseId}"`)
}
