package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/adeka83-arch/systemklinik-sub011/internal/attendance"
	attendanceerrors "github.com/adeka83-arch/systemklinik-sub011/internal/attendance/errors"
)

type fakeAttendanceService struct {
	CreateFn func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	GetAllFn func(ctx context.Context) ([]attendance.AttendanceResponse, error)
	UpdateFn func(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeAttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeAttendanceService) GetAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeAttendanceService) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeAttendanceService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAttendanceHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CreateFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, "doc1", req.SubjectID)
				assert.Equal(t, "check-in", req.EventType)
				return attendance.AttendanceResponse{
					ID:        "1735261200000-abcd1234",
					SubjectID: req.SubjectID,
					EventType: req.EventType,
					Shift:     req.Shift,
					Date:      "2024-12-27",
					Time:      "09:00",
				}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"subject_id":"doc1","shift":"09:00-15:00","event_type":"check-in","date":"2024-12-27","time":"09:00"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendances", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), "doc1")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeAttendanceService{}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		// subject_id hilang
		body := `{"shift":"09:00-15:00","event_type":"check-in"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendances", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate conflict", func(t *testing.T) {
		existing := attendance.AttendanceResponse{ID: "a1", SubjectID: "doc1", Date: "2024-12-27"}
		svc := &fakeAttendanceService{
			CreateFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrDuplicateAttendance.WithDetails(
					attendance.ConflictDetails{Duplicate: true, ExistingRecord: &existing},
				)
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"subject_id":"doc1","shift":"09:00-15:00","event_type":"check-in","date":"2024-12-27"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendances", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
		assert.Contains(t, w.Body.String(), `"duplicate":true`)
		assert.Contains(t, w.Body.String(), `"a1"`)
	})

	t.Run("missing check-in", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CreateFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrMissingCheckIn
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"subject_id":"doc1","shift":"09:00-15:00","event_type":"check-out"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendances", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestAttendanceHandler_GetAll(t *testing.T) {
	svc := &fakeAttendanceService{
		GetAllFn: func(ctx context.Context) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{
				{ID: "b", Date: "2024-12-27", Time: "15:00", EventType: "check-out"},
				{ID: "a", Date: "2024-12-27", Time: "09:00", EventType: "check-in"},
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendances", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestAttendanceHandler_Delete_NotFound(t *testing.T) {
	svc := &fakeAttendanceService{
		DeleteFn: func(ctx context.Context, id string) error {
			return attendanceerrors.ErrAttendanceNotFound
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/attendances/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
