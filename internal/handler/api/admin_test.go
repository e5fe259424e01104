//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"studio-booking/internal/handler/api"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/common/testutil"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	admin := s.router.Group("/api/admin", authMiddleware)
	admin.GET("/reservations", s.handler.ListReservations)
	admin.GET("/reservations/export", s.handler.ExportReservations)
	admin.GET("/blocked-times", s.handler.ListBlockedTimes)
	admin.POST("/blocked-times", s.handler.BlockSlots)
	admin.GET("/stats", s.handler.Statistics)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListReservations() {
	url := "/api/admin/reservations"

	s.Run("success: returns 200 OK with rows", func() {
		rows := []*queries.ReservationView{
			{ID: 1, Date: "2026-09-15", Time: "10:00-11:00", Space: "room-a", People: 2, Price: 10000},
		}
		s.mockQueries.EXPECT().ListReservations(gomock.Any()).Return(rows, nil).Times(1)

		var body []*queries.ReservationView
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(int64(1), body[0].ID)
	})

	s.Run("success: empty store yields an empty array, not null", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("[]", rec.Body.String())
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AdminHandlerTestSuite) TestExportReservations() {
	url := "/api/admin/reservations/export"

	s.Run("success: serves the CSV as an attachment", func() {
		payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,date\n")...)
		s.mockQueries.EXPECT().ExportReservationsCSV(gomock.Any()).Return(payload, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Disposition": `attachment; filename="reservations.csv"`,
			"Content-Type":        "text/csv; charset=utf-8",
		})
		s.True(bytes.Equal(payload, rec.Body.Bytes()))
	})

	s.Run("error: 500 when the export fails", func() {
		s.mockQueries.EXPECT().ExportReservationsCSV(gomock.Any()).
			Return(nil, errors.New("read failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestBlockSlots() {
	url := "/api/admin/blocked-times"

	reqBody := map[string]any{
		"from":   "2026-09-14",
		"to":     "2026-09-16",
		"space":  "studio",
		"slots":  []string{"09:00-10:00", "10:00-11:00"},
		"reason": "maintenance",
	}

	s.Run("success: returns 201 Created with the blocked count", func() {
		s.mockCommands.EXPECT().BlockSlots(gomock.Any(), gomock.Any()).
			Return(&commands.BlockSlotsResult{Blocked: 6}, nil).Times(1)

		var body resdto.BlockSlotsResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(6, body.Blocked)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing from", testutil.Field("from", nil)},
			{"missing to", testutil.Field("to", nil)},
			{"missing space", testutil.Field("space", nil)},
			{"empty slots", testutil.Field("slots", []string{})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request on an invalid range", func() {
		s.mockCommands.EXPECT().BlockSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("end precedes start"), errs.ErrValidationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid block request")
	})
}

func (s *AdminHandlerTestSuite) TestStatistics() {
	url := "/api/admin/stats?from=2026-09-01&to=2026-09-30"

	s.Run("success: returns 200 OK with the aggregate", func() {
		s.mockQueries.EXPECT().Statistics(gomock.Any(), "2026-09-01", "2026-09-30").
			Return(&queries.StatisticsView{From: "2026-09-01", To: "2026-09-30", Count: 3, Revenue: 50000}, nil).Times(1)

		var body queries.StatisticsView
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Count)
		s.Equal(int64(50000), body.Revenue)
	})

	s.Run("error: 400 Bad Request on an invalid range", func() {
		s.mockQueries.EXPECT().Statistics(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad range"), errs.ErrValidationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}
