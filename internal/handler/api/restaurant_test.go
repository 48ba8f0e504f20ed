//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"foody/internal/handler/api"
	resdto "foody/internal/handler/dto/response"
	"foody/internal/usecase/commands"
	"foody/tests/common/builder"
	"foody/tests/common/httptest"
	commandsmock "foody/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestaurantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRestaurantCommands
}

func (s *RestaurantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRestaurantCommands(s.mockCtrl)
	h := api.NewRestaurantHandler(s.mockCommands)

	s.router.POST("/admin/restaurants", h.Register)
	s.router.POST("/admin/restaurants/:id/rotate-key", h.RotateKey)
	s.router.POST("/admin/restaurants/:id/archive", h.Archive)
}

func (s *RestaurantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestaurantHandlerSuite(t *testing.T) {
	suite.Run(t, new(RestaurantHandlerTestSuite))
}

func (s *RestaurantHandlerTestSuite) TestRegister() {
	rb := builder.NewRestaurantBuilder()
	reqBody := rb.BuildRegisterRequestDTO()
	r, err := rb.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 with the plain key once", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).
			Return(&commands.RegisterRestaurantResult{Restaurant: r, APIKey: "plain-key"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants", reqBody, nil)

		var body resdto.RegisterRestaurantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(r.ID(), body.ID)
		s.Equal("plain-key", body.APIKey)
		s.Require().NotNil(body.Lat)
		s.InDelta(52.52, *body.Lat, 1e-9)
	})

	s.Run("error: 400 for missing or long name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants", map[string]any{}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants", map[string]any{"name": strings.Repeat("n", 256)}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants", map[string]any{"name": "x", "lat": 123.0}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *RestaurantHandlerTestSuite) TestRotateKey() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().RotateAPIKey(gomock.Any(), id).Return("fresh-key", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants/"+id.String()+"/rotate-key", nil, nil)

		var body resdto.APIKeyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("fresh-key", body.APIKey)
	})

	s.Run("error: 404 when restaurant unknown", func() {
		s.mockCommands.EXPECT().RotateAPIKey(gomock.Any(), id).Return("", commands.ErrRestaurantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants/"+id.String()+"/rotate-key", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Restaurant not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants/abc/rotate-key", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant id")
	})
}

func (s *RestaurantHandlerTestSuite) TestArchive() {
	id := uuid.New()
	s.mockCommands.EXPECT().Archive(gomock.Any(), id).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/restaurants/"+id.String()+"/archive", nil, nil)
	s.Equal(http.StatusNoContent, rec.Code)
}
