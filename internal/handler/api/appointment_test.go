//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("auth_principal", user.Principal{ID: s.actorID, Role: s.actorRole})
		c.Next()
	}

	s.router.POST("/appointments", authMiddleware, s.handler.CreateAppointment)
	s.router.GET("/appointments", authMiddleware, s.handler.ListAppointments)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.GetAppointment)
	s.router.PATCH("/appointments/:id", authMiddleware, s.handler.UpdateAppointment)
	s.router.POST("/appointments/:id/cancel", authMiddleware, s.handler.CancelAppointment)
	s.router.POST("/appointments/:id/confirm", authMiddleware, s.handler.ConfirmAppointment)
	s.router.POST("/appointments/:id/complete", authMiddleware, s.handler.CompleteAppointment)
	s.router.GET("/staff/:id/appointments", authMiddleware, s.handler.StaffSchedule)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

const testToken = "token"

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	s.Run("created", func() {
		b := builder.NewAppointmentBuilder().WithCustomerID(s.actorID)
		appt, err := b.BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(appt, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments",
			b.BuildCreateRequestDTO(), testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(appt.ID(), resp.ID)
		s.Equal("pending", resp.Status)
	})

	s.Run("missing token", func() {
		b := builder.NewAppointmentBuilder()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments",
			b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("malformed date", func() {
		b := builder.NewAppointmentBuilder()
		body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), func(m map[string]any) {
			m["date"] = "03/15/2026"
		})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("malformed time", func() {
		b := builder.NewAppointmentBuilder()
		body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), func(m map[string]any) {
			m["time"] = "10am"
		})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "HH:MM")
	})

	s.Run("missing required field", func() {
		b := builder.NewAppointmentBuilder()
		body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), func(m map[string]any) {
			delete(m, "staff_id")
		})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("slot conflict", func() {
		b := builder.NewAppointmentBuilder()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments",
			b.BuildCreateRequestDTO(), testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("booking for someone else", func() {
		b := builder.NewAppointmentBuilder()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments",
			b.BuildCreateRequestDTO(), testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	s.Run("found", func() {
		view := builder.NewAppointmentBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any()).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/"+view.ID.String(), nil, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.StaffName, resp.StaffName)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/not-a-uuid", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, gomock.Any()).Return(nil, shared.ErrNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/"+id.String(), nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("other customer's appointment", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, gomock.Any()).Return(nil, shared.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/"+id.String(), nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	s.Run("list with filters", func() {
		items := []*queries.AppointmentListItem{
			builder.NewAppointmentBuilder().BuildListItem(),
			builder.NewAppointmentBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filters queries.ListFilters, _ user.Principal) ([]*queries.AppointmentListItem, error) {
				s.Require().NotNil(filters.Status)
				s.Equal("pending", *filters.Status)
				return items, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?status=pending&limit=10", nil, testToken)

		var resp []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("uuid filters bind from the query string", func() {
		customerID := uuid.New()
		staffID := uuid.New()

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filters queries.ListFilters, _ user.Principal) ([]*queries.AppointmentListItem, error) {
				s.Require().NotNil(filters.CustomerID)
				s.Equal(customerID, *filters.CustomerID)
				s.Require().NotNil(filters.StaffID)
				s.Equal(staffID, *filters.StaffID)
				return nil, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?customer_id="+customerID.String()+"&staff_id="+staffID.String(), nil, testToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("malformed customer_id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?customer_id=not-a-uuid", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "customer_id must be a valid UUID")
	})

	s.Run("malformed staff_id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?staff_id=42", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "staff_id must be a valid UUID")
	})

	s.Run("malformed from date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?from=yesterday", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

// The command layer attaches its sentinels with errs.Mark on top of the
// repository cause; the handler must still map them, not fall through to 500.
func (s *AppointmentHandlerTestSuite) TestMarkedErrorMapping() {
	markedErr := func(kind infra.RepositoryErrorKind, sentinel error) error {
		return errs.Mark(infra.WrapRepoErr("repo failure", errs.New("cause"), kind), sentinel)
	}

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"marked conflict", markedErr(infra.KindConflict, shared.ErrConflict), http.StatusConflict, "not available"},
		{"marked not found", markedErr(infra.KindNotFound, shared.ErrNotFound), http.StatusNotFound, "Appointment not found"},
		{"marked invalid input", errs.Mark(errs.New("date is in the past"), shared.ErrInvalidInput), http.StatusBadRequest, "Invalid appointment parameters"},
		{"marked invalid state", errs.Mark(errs.New("completed is terminal"), shared.ErrInvalidState), http.StatusConflict, "does not allow"},
		{"marked unavailable", markedErr(infra.KindDBFailure, shared.ErrUnavailable), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			b := builder.NewAppointmentBuilder().WithCustomerID(s.actorID)
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments",
				b.BuildCreateRequestDTO(), testToken)
			httptest.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantMsg)
		})
	}
}

func (s *AppointmentHandlerTestSuite) TestUpdateAppointment() {
	s.Run("rescheduled", func() {
		b := builder.NewAppointmentBuilder().WithCustomerID(s.actorID)
		appt, err := b.BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().Update(gomock.Any(), appt.ID(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, input commands.UpdateAppointmentInput, _ user.Principal) (*appointment.Appointment, error) {
				s.Require().NotNil(input.Date)
				s.Require().NotNil(input.TimeOfDay)
				return appt, nil
			})

		body := map[string]any{"date": "2026-04-01", "time": "14:30"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/appointments/"+appt.ID().String(), body, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("status change rejected for customer", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrForbidden)

		body := map[string]any{"status": "confirmed"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/appointments/"+id.String(), body, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("invalid transition maps to conflict", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrInvalidState)

		body := map[string]any{"status": "completed"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/appointments/"+id.String(), body, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "status does not allow")
	})
}

func (s *AppointmentHandlerTestSuite) TestCancelAppointment() {
	s.Run("cancelled with reason", func() {
		b := builder.NewAppointmentBuilder().WithCustomerID(s.actorID)
		appt := b.BuildDomainWithStatus(appointment.StatusPending)

		s.mockCommands.EXPECT().Cancel(gomock.Any(), appt.ID(), "sick", gomock.Any()).Return(appt, nil)

		body := map[string]any{"reason": "sick"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/appointments/"+appt.ID().String()+"/cancel", body, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("cancelled without body", func() {
		b := builder.NewAppointmentBuilder().WithCustomerID(s.actorID)
		appt := b.BuildDomainWithStatus(appointment.StatusPending)

		s.mockCommands.EXPECT().Cancel(gomock.Any(), appt.ID(), "", gomock.Any()).Return(appt, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/appointments/"+appt.ID().String()+"/cancel", nil, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("already terminal", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "", gomock.Any()).
			Return(nil, shared.ErrInvalidState)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/appointments/"+id.String()+"/cancel", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "status does not allow")
	})
}

func (s *AppointmentHandlerTestSuite) TestConfirmAndComplete() {
	s.Run("confirmed", func() {
		b := builder.NewAppointmentBuilder()
		appt := b.BuildDomainWithStatus(appointment.StatusConfirmed)

		s.mockCommands.EXPECT().Confirm(gomock.Any(), appt.ID(), gomock.Any()).Return(appt, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/appointments/"+appt.ID().String()+"/confirm", nil, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("completed", func() {
		b := builder.NewAppointmentBuilder()
		appt := b.BuildDomainWithStatus(appointment.StatusCompleted)

		s.mockCommands.EXPECT().Complete(gomock.Any(), appt.ID(), gomock.Any()).Return(appt, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/appointments/"+appt.ID().String()+"/complete", nil, testToken)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("completed", resp.Status)
	})
}

func (s *AppointmentHandlerTestSuite) TestStaffSchedule() {
	s.Run("admin reads schedule for a date", func() {
		staffID := uuid.New()
		items := []*queries.AppointmentListItem{builder.NewAppointmentBuilder().BuildListItem()}

		s.mockQueries.EXPECT().StaffSchedule(gomock.Any(), staffID, gomock.Any(), gomock.Any()).
			Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/staff/"+staffID.String()+"/appointments?date=2026-03-10", nil, testToken)

		var resp []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("customer gets forbidden", func() {
		staffID := uuid.New()
		s.mockQueries.EXPECT().StaffSchedule(gomock.Any(), staffID, gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/staff/"+staffID.String()+"/appointments", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("malformed date", func() {
		staffID := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/staff/"+staffID.String()+"/appointments?date=tomorrow", nil, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})
}
