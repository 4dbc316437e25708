//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"brrow-engine/internal/domain/countdown"
	"brrow-engine/internal/handler/api"
	reqdto "brrow-engine/internal/handler/dto/request"
	resdto "brrow-engine/internal/handler/dto/response"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"
	"brrow-engine/tests/common/httptest"
	"brrow-engine/tests/common/testutil"
	usecasemock "brrow-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CountdownHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCountdowns *usecasemock.MockCountdownSessions
}

func (s *CountdownHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCountdowns = usecasemock.NewMockCountdownSessions(s.mockCtrl)
	h := api.NewCountdownHandler(s.mockCountdowns)

	g := s.router.Group("/countdowns", fakeAuth)
	g.POST("", h.Start)
	g.GET("/:id", h.Get)
	g.GET("/:id/stream", h.Stream)
	g.DELETE("/:id", h.Stop)
}

func (s *CountdownHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCountdownHandlerSuite(t *testing.T) {
	suite.Run(t, new(CountdownHandlerTestSuite))
}

// streamRecorder adds the close notification gin's Stream expects from a
// live connection.
type streamRecorder struct {
	*nethttptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func (s *CountdownHandlerTestSuite) TestStart() {
	id := uuid.New()
	deadline := time.Date(2025, 3, 3, 15, 15, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockCountdowns.EXPECT().Start(gomock.Any(), testUserID, "2025-03-03T15:15:00Z", countdown.PurposeMeetup).
			Return(usecase.CountdownView{
				SessionID: id,
				Deadline:  deadline,
				Purpose:   countdown.PurposeMeetup,
				Running:   true,
				Remaining: countdown.Remaining{Days: 2, Hours: 3, Minutes: 15, Seconds: 184500},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/countdowns", map[string]any{
			"deadline": "2025-03-03T15:15:00Z",
			"purpose":  "meetup",
		}, "token")

		var body resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/countdowns/" + id.String()})
		s.Equal(id.String(), body.SessionID)
		s.Equal(deadline.Unix(), body.Deadline)
		s.True(body.Running)
		s.Equal("2d 3h", body.Remaining.Display)
		s.Equal(3, body.Remaining.DaysLeft)
		s.False(body.Remaining.Urgent)
	})

	reqBody := reqdto.StartCountdownRequest{Deadline: "2025-03-03T15:15:00Z", Purpose: "meetup"}
	bindingCases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing field: deadline (required)", mutate: testutil.Field("deadline", nil)},
		{name: "missing field: purpose (required)", mutate: testutil.Field("purpose", nil)},
		{name: "empty deadline", mutate: testutil.Field("deadline", "")},
		{name: "deadline of wrong type", mutate: testutil.Field("deadline", 1741014900)},
	}
	for _, tc := range bindingCases {
		s.Run("error: 400 "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/countdowns", body, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 422 unparseable deadline", func() {
		s.mockCountdowns.EXPECT().Start(gomock.Any(), testUserID, "next tuesday", countdown.PurposeMeetup).
			Return(usecase.CountdownView{}, errs.Mark(errors.New("bad deadline"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/countdowns", map[string]any{
			"deadline": "next tuesday",
			"purpose":  "meetup",
		}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *CountdownHandlerTestSuite) TestGetAndStop() {
	id := uuid.New()

	s.Run("error: 400 bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/countdowns/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 unknown countdown", func() {
		s.mockCountdowns.EXPECT().Get(gomock.Any(), testUserID, id).Return(usecase.CountdownView{}, errs.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/countdowns/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("success: stop", func() {
		s.mockCountdowns.EXPECT().Stop(gomock.Any(), testUserID, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/countdowns/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 stopping twice", func() {
		s.mockCountdowns.EXPECT().Stop(gomock.Any(), testUserID, id).Return(errs.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/countdowns/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CountdownHandlerTestSuite) TestStream() {
	id := uuid.New()

	s.Run("ticks until the countdown stops", func() {
		ticks := make(chan countdown.Remaining, 2)
		ticks <- countdown.Remaining{Minutes: 15, Seconds: 900}
		ticks <- countdown.Remaining{Minutes: 14, Seconds: 899}
		close(ticks)

		released := false
		s.mockCountdowns.EXPECT().Subscribe(gomock.Any(), testUserID, id).
			Return((<-chan countdown.Remaining)(ticks), func() { released = true }, nil)

		req := nethttptest.NewRequest(http.MethodGet, "/countdowns/"+id.String()+"/stream", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := &streamRecorder{ResponseRecorder: nethttptest.NewRecorder(), closed: make(chan bool)}
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/event-stream", rec.Header().Get("Content-Type"))
		out := rec.Body.String()
		s.Contains(out, "event:tick")
		s.Contains(out, `"display":"15m"`)
		s.Contains(out, `"display":"14m"`)
		s.Contains(out, "event:stopped")
		s.True(released)
	})

	s.Run("error: 404 unknown countdown", func() {
		s.mockCountdowns.EXPECT().Subscribe(gomock.Any(), testUserID, id).Return(nil, nil, errs.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/countdowns/"+id.String()+"/stream", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
