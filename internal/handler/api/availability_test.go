//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"studio-booking/internal/handler/api"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/api/catalog", s.handler.GetCatalog)
	s.router.GET("/api/availability", s.handler.GetAvailableTimes)
	s.router.GET("/api/availability/day", s.handler.GetDayOccupancy)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetCatalog() {
	s.mockQueries.EXPECT().Catalog().
		Return(queries.CatalogView{
			Spaces:  []string{"room-a", "room-b", "studio"},
			Options: []string{"sound-equipment", "lighting-equipment", "instrument-rental"},
			Slots:   []string{"09:00-10:00"},
		}).Times(1)

	var body queries.CatalogView
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Spaces, 3)
	s.Len(body.Options, 3)
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailableTimes() {
	s.Run("success: returns 200 OK with free slots", func() {
		s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), "2026-09-15", "room-a").
			Return([]string{"09:00-10:00", "11:00-12:00"}, nil).Times(1)

		var body []string
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2026-09-15&space=room-a", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"09:00-10:00", "11:00-12:00"}, body)
	})

	s.Run("error: 400 Bad Request on an invalid query", func() {
		s.mockQueries.EXPECT().AvailableTimes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad date"), errs.ErrValidationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=someday&space=room-a", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date or space")
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetDayOccupancy() {
	s.Run("success: returns 200 OK with taken pairs", func() {
		s.mockQueries.EXPECT().DayOccupancy(gomock.Any(), "2026-09-15").
			Return([]queries.SlotOccupancy{{Time: "09:00-10:00", Space: "studio"}}, nil).Times(1)

		var body []queries.SlotOccupancy
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability/day?date=2026-09-15", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("studio", body[0].Space)
	})

	s.Run("error: 400 Bad Request on a malformed date", func() {
		s.mockQueries.EXPECT().DayOccupancy(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad date"), errs.ErrValidationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability/day?date=2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}
