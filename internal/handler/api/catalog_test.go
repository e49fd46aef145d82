//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomescape/internal/handler/api"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/queries"
	"roomescape/tests/common/builder"
	"roomescape/tests/common/httptest"
	"roomescape/tests/common/testutil"
	commandsmock "roomescape/tests/mock/commands"
	queriesmock "roomescape/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	timeCommands  *commandsmock.MockTimeSlotCommands
	timeQueries   *queriesmock.MockTimeSlotQueries
	themeCommands *commandsmock.MockThemeCommands
	themeQueries  *queriesmock.MockThemeQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.timeCommands = commandsmock.NewMockTimeSlotCommands(s.mockCtrl)
	s.timeQueries = queriesmock.NewMockTimeSlotQueries(s.mockCtrl)
	s.themeCommands = commandsmock.NewMockThemeCommands(s.mockCtrl)
	s.themeQueries = queriesmock.NewMockThemeQueries(s.mockCtrl)

	times := api.NewReservationTimeHandler(s.timeCommands, s.timeQueries)
	themes := api.NewThemeHandler(s.themeCommands, s.themeQueries)

	authMiddleware := newAuthMiddleware(s.mockCtrl)
	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}

	s.router.GET("/times", times.List)
	s.router.GET("/times/available", times.Available)
	s.router.POST("/times", append(adminOnly, times.Create)...)
	s.router.DELETE("/times/:id", append(adminOnly, times.Delete)...)
	s.router.GET("/themes", themes.List)
	s.router.GET("/themes/popular", themes.Popular)
	s.router.POST("/themes", append(adminOnly, themes.Create)...)
	s.router.DELETE("/themes/:id", append(adminOnly, themes.Delete)...)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// Times
// ================================================================================

func (s *CatalogHandlerTestSuite) TestTimes() {
	s.Run("list: public and ordered as returned", func() {
		s.timeQueries.EXPECT().FindAll(gomock.Any()).Return([]*queries.TimeSlotView{
			builder.NewTimeSlotBuilder().WithID(1).WithStartAt("10:00").BuildView(),
			builder.NewTimeSlotBuilder().WithID(2).WithStartAt("12:00").BuildView(),
		}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/times", nil, "")

		var body []resdto.ReservationTimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.ReservationTimeResponse{{ID: 1, StartAt: "10:00"}, {ID: 2, StartAt: "12:00"}}, body)
	})

	s.Run("available: returns booked flags", func() {
		s.timeQueries.EXPECT().FindAvailable(gomock.Any(), gomock.Any(), int64(1)).Return([]*queries.AvailableTimeSlotView{
			{Time: queries.TimeSlotView{ID: 1, StartAt: "10:00"}, Booked: true},
		}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/times/available?date=2100-08-05&theme-id=1", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"booked":true`)
	})

	s.Run("available: 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/times/available?date=2100/08/05&theme-id=1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("available: 400 without theme-id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/times/available?date=2100-08-05", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("create: 201 with location", func() {
		reqBody := builder.NewTimeSlotBuilder().BuildCreateRequestDTO()
		s.timeCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(builder.NewTimeSlotBuilder().WithID(9).BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/times", reqBody, adminToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertLocation(s.T(), rec, "/times/9")
	})

	s.Run("create: 409 for a duplicate start time", func() {
		s.timeCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrDuplicateTimeSlot).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/times",
			builder.NewTimeSlotBuilder().BuildCreateRequestDTO(), adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, errs.ErrDuplicateTimeSlot.Error())
	})

	s.Run("create: 403 for non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/times",
			builder.NewTimeSlotBuilder().BuildCreateRequestDTO(), userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("delete: 409 while referenced", func() {
		s.timeCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(errs.ErrInUse).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/times/1", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, errs.ErrInUse.Error())
	})

	s.Run("delete: 404 for an unknown slot", func() {
		s.timeCommands.EXPECT().Delete(gomock.Any(), int64(999)).Return(errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/times/999", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// Themes
// ================================================================================

func (s *CatalogHandlerTestSuite) TestThemes() {
	reqBody := builder.NewThemeBuilder().BuildCreateRequestDTO()

	s.Run("list: public", func() {
		s.themeQueries.EXPECT().FindAll(gomock.Any()).
			Return([]*queries.ThemeView{builder.NewThemeBuilder().BuildView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/themes", nil, "")

		var body []resdto.ThemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(reqBody.Name, body[0].Name)
	})

	s.Run("popular: passes count through", func() {
		s.themeQueries.EXPECT().FindPopular(gomock.Any(), gomock.Any(), gomock.Any(), 10).
			Return([]*queries.ThemeView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/themes/popular?startDate=2100-08-01&endDate=2100-08-07&count=10", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("popular: 400 for a malformed endDate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/themes/popular?startDate=2100-08-01&endDate=tomorrow&count=10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "endDate")
	})

	s.Run("create: validation boundaries", func() {
		cases := []testCaseReservation{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: description (required)", mutate: testutil.Field("description", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: thumbnail (required)", mutate: testutil.Field("thumbnail", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/themes",
					testutil.DtoMap(s.T(), reqBody, tc.mutate), adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("create: 201 for admin", func() {
		s.themeCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(builder.NewThemeBuilder().WithID(4).BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/themes", reqBody, adminToken)

		var body resdto.ThemeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(4), body.ID)
	})

	s.Run("delete: 204 for admin", func() {
		s.themeCommands.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/themes/4", nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
