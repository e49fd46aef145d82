//go:build unit

package api_test

import (
	"context"
	"errors"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	authMiddleware := newAuthMiddleware(s.mockCtrl)
	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	s.router.POST("/reservations", requireAuth, s.handler.Create)
	s.router.GET("/reservations", requireAuth, requireAdmin, s.handler.Search)
	s.router.GET("/reservations/mine", requireAuth, s.handler.Mine)
	s.router.DELETE("/reservations/:id", requireAuth, requireAdmin, s.handler.Delete)
	s.router.POST("/admin/reservations", requireAuth, requireAdmin, s.handler.AdminCreate)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 7 }).BuildView()

	validation := []testCaseReservation{
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: timeId (required)", mutate: testutil.Field("timeId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: themeId (required)", mutate: testutil.Field("themeId", nil), expectCode: http.StatusBadRequest},
		{name: "timeId boundary invalid (0)", mutate: testutil.Field("timeId", 0), expectCode: http.StatusBadRequest},
		{name: "themeId boundary invalid (-1)", mutate: testutil.Field("themeId", -1), expectCode: http.StatusBadRequest},
		{name: "timeId wrong type", mutate: testutil.Field("timeId", "one"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, userPrincipal.MemberID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("2100-08-05", body.Date)
		s.Equal("10:00", body.Time.StartAt)
		httptest.AssertLocation(s.T(), rec, "/reservations/7")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized for an invalid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot already booked",
				commandsError:  errs.ErrDuplicateBooking,
				expectedStatus: http.StatusConflict,
				expectedMsg:    errs.ErrDuplicateBooking.Error(),
			},
			{
				name:           "past date and time",
				commandsError:  errs.Mark(errors.New("in the past"), errs.ErrPastDateTime),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    errs.ErrPastDateTime.Error(),
			},
			{
				name:           "unknown slot or theme",
				commandsError:  errs.Mark(errors.New("theme not found"), errs.ErrReferenceNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    errs.ErrReferenceNotFound.Error(),
			},
			{
				name:           "malformed date",
				commandsError:  errs.Mark(errors.New("invalid date format"), errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid date format",
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAdminCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestAdminCreate() {
	url := "/admin/reservations"
	reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.MemberID = 5 }).BuildAdminCreateRequestDTO()

	s.Run("success: admin books for another member", func() {
		s.mockCommands.EXPECT().CreateForMember(gomock.Any(), reqBody).
			Return(builder.NewReservationBuilder().BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 when memberId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("memberId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSearch() {
	s.Run("success: forwards every filter", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ReservationFilter) ([]*queries.ReservationView, error) {
				s.Require().NotNil(f.ThemeID)
				s.Equal(int64(2), *f.ThemeID)
				s.Require().NotNil(f.MemberID)
				s.Equal(int64(3), *f.MemberID)
				s.Require().NotNil(f.DateFrom)
				s.Equal("2100-08-01", f.DateFrom.String())
				s.Nil(f.DateTo)
				return []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?themeId=2&memberId=3&dateFrom=2100-08-01", nil, adminToken)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: no filters returns an empty array", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.ReservationFilter{}).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, adminToken)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 for a malformed dateTo", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?dateTo=08-01-2100", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestMine / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestMine() {
	s.Run("success: scoped to the caller", func() {
		s.mockQueries.EXPECT().FindMine(gomock.Any(), userPrincipal.MemberID).
			Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine", nil, userToken)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/4", nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(999)).Return(errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/999", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/abc", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
