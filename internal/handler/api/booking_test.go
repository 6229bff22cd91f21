//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/booking"
	"household-services/internal/domain/user"
	"household-services/internal/handler/api"
	reqdto "household-services/internal/handler/dto/request"
	resdto "household-services/internal/handler/dto/response"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase/readmodel"
	"household-services/tests/common/builder"
	"household-services/tests/common/httptest"
	"household-services/tests/common/testutil"
	usecasemock "household-services/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	identity    auth.Identity
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.identity = auth.NewIdentity(uuid.New(), user.RoleCustomer, "customer@example.com", time.Now(), time.Now().Add(time.Hour))

	handler := api.NewBookingHandler(s.mockUseCase)
	authenticate := authenticatedAs(s.mockCtrl, &s.identity)

	s.router.POST("/bookings", authenticate, handler.CreateBooking)
	s.router.GET("/bookings", authenticate, handler.ListBookings)
	s.router.PUT("/bookings/:id/status", authenticate, handler.UpdateBookingStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnRM := b.BuildReadModel()

	missing := []testCaseBooking{
		{name: "missing field: serviceId (required)", mutate: testutil.Field("serviceId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "optional field: address", mutate: testutil.Field("address", nil), expectCode: http.StatusCreated},
		{name: "optional field: location", mutate: testutil.Field("location", nil), expectCode: http.StatusCreated},
	}

	malformed := []testCaseBooking{
		{name: "serviceId is not a uuid", mutate: testutil.Field("serviceId", "svc-1"), expectCode: http.StatusBadRequest},
		{name: "empty date", mutate: testutil.Field("date", ""), expectCode: http.StatusBadRequest},
		{name: "location with three coordinates", mutate: testutil.Field("location", map[string]any{"type": "Point", "coordinates": []float64{1, 2, 3}}), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, malformed}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), s.identity, reqBody).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Booking created", body.Message)
		s.Require().NotNil(body.Booking)
		s.Equal(returnRM.ID, body.Booking.ID)
		s.Equal("pending", body.Booking.Status)
		s.Equal([]float64{-0.1586, 51.5238}, body.Booking.Location.Coordinates)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(returnRM, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "No token provided")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown service", useCaseError: errs.Wrap(errs.ErrNotFound, "service"), expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "service not approved", useCaseError: errs.Wrap(errs.ErrServiceUnavailable, "pending"), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Service not available for booking"},
			{name: "unparseable date", useCaseError: errs.Wrap(errs.ErrValidation, "date"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "storage failure", useCaseError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), reqBody).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"
	reqBody := reqdto.UpdateBookingStatusRequest{Status: "confirmed"}
	returnRM := builder.NewBookingBuilder().WithID(bookingID).WithStatus(booking.StatusConfirmed).BuildReadModel()

	s.Run("success: returns 200 OK with the updated booking", func() {
		s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), s.identity, bookingID, reqBody).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Booking status updated", body.Message)
		s.Equal("confirmed", body.Booking.Status)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/42/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 Bad Request without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status is required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not a party", useCaseError: errs.Wrap(errs.ErrForbidden, "not yours"), expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "terminal booking", useCaseError: errs.Wrap(errs.ErrInvalidTransition, "completed"), expectedStatus: http.StatusConflict, expectedMsg: "Invalid status transition"},
			{name: "concurrent update", useCaseError: errs.Wrap(errs.ErrConflict, "stale"), expectedStatus: http.StatusConflict, expectedMsg: "Resource was modified concurrently"},
			{name: "unknown booking", useCaseError: errs.Wrap(errs.ErrNotFound, "booking"), expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), bookingID, reqBody).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns every booking", func() {
		rms := []*readmodel.BookingRM{
			builder.NewBookingBuilder().BuildReadModel(),
			builder.NewBookingBuilder().WithoutLocation().BuildReadModel(),
		}
		s.mockUseCase.EXPECT().ListBookings(gomock.Any(), s.identity).Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 2)
		s.Equal(rms[0].ID, body.Bookings[0].ID)
		s.Nil(body.Bookings[1].Location)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockUseCase.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookings":[]}`, rec.Body.String())
	})
}
