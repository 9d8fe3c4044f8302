package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTriggerService struct{ mock.Mock }

func (m *mockTriggerService) List(ctx context.Context) ([]domain.EmailTrigger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EmailTrigger), args.Error(1)
}
func (m *mockTriggerService) Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error) {
	args := m.Called(ctx, triggerID)
	if t, _ := args.Get(0).(*domain.EmailTrigger); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTriggerService) Create(ctx context.Context, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	args := m.Called(ctx, input)
	if t, _ := args.Get(0).(*domain.EmailTrigger); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTriggerService) Update(ctx context.Context, triggerID string, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	args := m.Called(ctx, triggerID, input)
	if t, _ := args.Get(0).(*domain.EmailTrigger); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTriggerService) Delete(ctx context.Context, triggerID string) error {
	return m.Called(ctx, triggerID).Error(0)
}
func (m *mockTriggerService) Toggle(ctx context.Context, triggerID string, active bool) (*domain.EmailTrigger, error) {
	args := m.Called(ctx, triggerID, active)
	if t, _ := args.Get(0).(*domain.EmailTrigger); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTriggerService) SendTest(ctx context.Context, triggerID, to string) error {
	return m.Called(ctx, triggerID, to).Error(0)
}

// newTriggerRouter mounts the handler on the real route shapes so URL
// parameters resolve the same way they do in production.
func newTriggerRouter(h *TriggerHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/email-triggers/get-all", h.GetAll)
	r.Get("/email-triggers/timing-options", h.TimingOptions)
	r.Post("/email-triggers/create", h.Create)
	r.Put("/email-triggers/{id}/update", h.Update)
	r.Delete("/email-triggers/{id}/delete", h.Delete)
	r.Put("/email-triggers/{id}/toggle", h.Toggle)
	return r
}

func TestGetAll(t *testing.T) {
	svc := new(mockTriggerService)
	svc.On("List", mock.Anything).Return([]domain.EmailTrigger{
		{TriggerID: "tr-1", TriggerName: "welcome", Timing: timing.Immediate()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/email-triggers/get-all", nil)
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.EmailTrigger
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "welcome", got[0].TriggerName)
}

func TestCreate_AcceptsFlatTimingCode(t *testing.T) {
	svc := new(mockTriggerService)
	want := timing.Descriptor{Type: timing.TypeAfter, Unit: timing.UnitDay, Value: 2}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in domain.EmailTriggerInput) bool {
		return in.Timing == want
	})).Return(&domain.EmailTrigger{TriggerID: "tr-1", Timing: want}, nil)

	body := `{"triggerName":"t","event":"evt-1","timing":"after_day_2","status":"active"}`
	req := httptest.NewRequest(http.MethodPost, "/email-triggers/create", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreate_MalformedTimingCode(t *testing.T) {
	svc := new(mockTriggerService)

	body := `{"triggerName":"t","event":"evt-1","timing":"after_week_2","status":"active"}`
	req := httptest.NewRequest(http.MethodPost, "/email-triggers/create", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_UnknownTriggerIs404(t *testing.T) {
	svc := new(mockTriggerService)
	svc.On("Update", mock.Anything, "tr-missing", mock.Anything).Return(nil, domain.ErrNotFound)

	body := `{"triggerName":"t","event":"evt-1","timing":"immediate","status":"active"}`
	req := httptest.NewRequest(http.MethodPut, "/email-triggers/tr-missing/update", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDelete(t *testing.T) {
	svc := new(mockTriggerService)
	svc.On("Delete", mock.Anything, "tr-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/email-triggers/tr-1/delete", nil)
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "trigger deleted", env.Message)
}

func TestToggle(t *testing.T) {
	svc := new(mockTriggerService)
	svc.On("Toggle", mock.Anything, "tr-1", false).
		Return(&domain.EmailTrigger{TriggerID: "tr-1", Status: domain.TriggerInactive}, nil)

	req := httptest.NewRequest(http.MethodPut, "/email-triggers/tr-1/toggle", strings.NewReader(`{"active":false}`))
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(svc)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.EmailTrigger
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, domain.TriggerInactive, got.Status)
}

func TestTimingOptions(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/email-triggers/timing-options", nil)
	rr := httptest.NewRecorder()
	newTriggerRouter(NewTriggerHandler(new(mockTriggerService))).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var opts []timing.Option
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &opts))
	require.Len(t, opts, 9)
	assert.Equal(t, "immediate", opts[0].Code)
	assert.Equal(t, "Immediately", opts[0].Label)
}
