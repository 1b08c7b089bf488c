package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/handler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/middleware"
	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/scheduler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/service"
	"github.com/yagomat/supra-client-nexus-sub000/internal/service/mocks"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "test-request-id"))
	return req
}

func TestHandler_RunCampaign(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(*mocks.MockCampaignService)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "accepted",
			body: service.CampaignParams{Name: "promo", MessageContent: "Olá {nome}"},
			setupMocks: func(m *mocks.MockCampaignService) {
				m.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.BulkCampaign{ID: 7, Name: "promo", Status: models.CampaignStatusScheduled}, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody: func(t *testing.T, body []byte) {
				var resp models.BulkCampaign
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(7), resp.ID)
				assert.Equal(t, models.CampaignStatusScheduled, resp.Status)
			},
		},
		{
			name: "missing content",
			body: service.CampaignParams{Name: "promo"},
			setupMocks: func(m *mocks.MockCampaignService) {
				m.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, service.ErrCampaignMissingContent)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "BAD_REQUEST", resp.Error)
			},
		},
		{
			name: "template not found",
			body: service.CampaignParams{Name: "promo"},
			setupMocks: func(m *mocks.MockCampaignService) {
				m.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: func(t *testing.T, body []byte) {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "NOT_FOUND", resp.Error)
			},
		},
		{
			name: "internal error",
			body: service.CampaignParams{Name: "promo"},
			setupMocks: func(m *mocks.MockCampaignService) {
				m.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, middleware.ErrorCodeInternal, resp.Error)
				assert.Equal(t, "Failed to launch campaign", resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCampaign := mocks.NewMockCampaignService(ctrl)
			tt.setupMocks(mockCampaign)

			h := handler.NewHandler(&service.Service{Campaign: mockCampaign}, zap.NewNop())

			w := httptest.NewRecorder()
			h.RunCampaign(w, newRequest(http.MethodPost, "/campaigns/run", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.expectedBody(t, w.Body.Bytes())
		})
	}
}

func TestHandler_RunCampaign_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewHandler(&service.Service{Campaign: mocks.NewMockCampaignService(ctrl)}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.RunCampaign(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SendTemplateMessage(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockMessageService)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "sent",
			setupMocks: func(m *mocks.MockMessageService) {
				m.EXPECT().SendTemplateMessage(gomock.Any(), gomock.Any(), int64(3), int64(8), gomock.Any()).
					Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var resp struct {
					Sent bool `json:"sent"`
				}
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Sent)
			},
		},
		{
			name: "not found",
			setupMocks: func(m *mocks.MockMessageService) {
				m.EXPECT().SendTemplateMessage(gomock.Any(), gomock.Any(), int64(3), int64(8), gomock.Any()).
					Return(false, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: func(t *testing.T, body []byte) {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "NOT_FOUND", resp.Error)
			},
		},
		{
			name: "internal error",
			setupMocks: func(m *mocks.MockMessageService) {
				m.EXPECT().SendTemplateMessage(gomock.Any(), gomock.Any(), int64(3), int64(8), gomock.Any()).
					Return(false, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, middleware.ErrorCodeInternal, resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMessage := mocks.NewMockMessageService(ctrl)
			tt.setupMocks(mockMessage)

			h := handler.NewHandler(&service.Service{Message: mockMessage}, zap.NewNop())

			body := map[string]any{"template_id": 3, "cliente_id": 8}
			w := httptest.NewRecorder()
			h.SendTemplateMessage(w, newRequest(http.MethodPost, "/messages/template", body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.expectedBody(t, w.Body.Bytes())
		})
	}
}

func TestHandler_ScheduleReminders(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockReminderService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "scheduled",
			setupMocks: func(m *mocks.MockReminderService) {
				m.EXPECT().Schedule(gomock.Any(), gomock.Any()).
					Return(&service.ScheduleResult{ScheduledCount: 12}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "billing not configured",
			setupMocks: func(m *mocks.MockReminderService) {
				m.EXPECT().Schedule(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrBillingNotConfigured)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "BILLING_NOT_CONFIGURED",
		},
		{
			name: "billing inactive",
			setupMocks: func(m *mocks.MockReminderService) {
				m.EXPECT().Schedule(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrBillingInactive)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "BILLING_INACTIVE",
		},
		{
			name: "internal error",
			setupMocks: func(m *mocks.MockReminderService) {
				m.EXPECT().Schedule(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  middleware.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReminder := mocks.NewMockReminderService(ctrl)
			tt.setupMocks(mockReminder)

			h := handler.NewHandler(&service.Service{Reminder: mockReminder}, zap.NewNop())

			w := httptest.NewRecorder()
			h.ScheduleReminders(w, newRequest(http.MethodPost, "/reminders/schedule", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp service.ScheduleResult
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 12, resp.ScheduledCount)
			}
		})
	}
}

func TestHandler_IngestProviderEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		setupMocks     func(*mocks.MockSessionService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "qr event accepted",
			body: map[string]any{"type": "qr", "qr_code": "2@abc"},
			setupMocks: func(m *mocks.MockSessionService) {
				m.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "status event accepted",
			body: map[string]any{"type": "status", "status": "open", "phone_number": "5511988887777"},
			setupMocks: func(m *mocks.MockSessionService) {
				m.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "unknown event type",
			body:           map[string]any{"type": "presence"},
			setupMocks:     func(m *mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "BAD_REQUEST",
		},
		{
			name:           "qr event without code",
			body:           map[string]any{"type": "qr"},
			setupMocks:     func(m *mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "BAD_REQUEST",
		},
		{
			name: "no live instance",
			body: map[string]any{"type": "message", "from": "5511977776666", "text": "oi"},
			setupMocks: func(m *mocks.MockSessionService) {
				m.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(service.ErrNoLiveInstance)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "NO_LIVE_INSTANCE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := mocks.NewMockSessionService(ctrl)
			tt.setupMocks(mockSession)

			h := handler.NewHandler(&service.Service{Session: mockSession}, zap.NewNop())

			w := httptest.NewRecorder()
			h.IngestProviderEvent(w, newRequest(http.MethodPost, "/provider/events", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestHandler_GetMessageLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessage := mocks.NewMockMessageService(ctrl)
	mockMessage.EXPECT().GetMessageLogs(gomock.Any(), gomock.Any(), 2, 10).
		Return(&service.MessageLogPage{
			Logs: []*models.MessageLog{{ID: 1}},
			Pagination: service.Pagination{
				CurrentPage:  2,
				TotalPages:   5,
				TotalItems:   45,
				ItemsPerPage: 10,
			},
		}, nil)

	h := handler.NewHandler(&service.Service{Message: mockMessage}, zap.NewNop())

	w := httptest.NewRecorder()
	h.GetMessageLogs(w, newRequest(http.MethodGet, "/messages?page=2&limit=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.MessageLogPage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Logs, 1)
	assert.Equal(t, 5, resp.Pagination.TotalPages)
}

func TestHandler_GetMessageLogs_BadQueryFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessage := mocks.NewMockMessageService(ctrl)
	mockMessage.EXPECT().GetMessageLogs(gomock.Any(), gomock.Any(), 1, 20).
		Return(&service.MessageLogPage{}, nil)

	h := handler.NewHandler(&service.Service{Message: mockMessage}, zap.NewNop())

	w := httptest.NewRecorder()
	h.GetMessageLogs(w, newRequest(http.MethodGet, "/messages?page=abc&limit=-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_StartDispatcher(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockDispatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "started",
			setupMocks: func(m *mocks.MockDispatchService) {
				m.EXPECT().Start().Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already running",
			setupMocks: func(m *mocks.MockDispatchService) {
				m.EXPECT().Start().Return(scheduler.ErrSchedulerAlreadyRunning)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "DISPATCHER_ALREADY_RUNNING",
		},
		{
			name: "internal error",
			setupMocks: func(m *mocks.MockDispatchService) {
				m.EXPECT().Start().Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  middleware.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatch := mocks.NewMockDispatchService(ctrl)
			tt.setupMocks(mockDispatch)

			h := handler.NewHandler(&service.Service{Dispatch: mockDispatch}, zap.NewNop())

			w := httptest.NewRecorder()
			h.StartDispatcher(w, newRequest(http.MethodPost, "/dispatch", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestHandler_StopDispatcher(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockDispatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "stopped",
			setupMocks: func(m *mocks.MockDispatchService) {
				m.EXPECT().Stop().Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not running",
			setupMocks: func(m *mocks.MockDispatchService) {
				m.EXPECT().Stop().Return(scheduler.ErrSchedulerNotRunning)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "DISPATCHER_NOT_RUNNING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatch := mocks.NewMockDispatchService(ctrl)
			tt.setupMocks(mockDispatch)

			h := handler.NewHandler(&service.Service{Dispatch: mockDispatch}, zap.NewNop())

			w := httptest.NewRecorder()
			h.StopDispatcher(w, newRequest(http.MethodDelete, "/dispatch", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp errorBody
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestHandler_GetSessionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockSessionService(ctrl)
	mockSession.EXPECT().GetStatus(gomock.Any(), gomock.Any()).
		Return(&service.SessionStatusResult{
			Status: models.SessionStatusQRNeeded,
			QRCode: "2@abc",
		}, nil)

	h := handler.NewHandler(&service.Service{Session: mockSession}, zap.NewNop())

	w := httptest.NewRecorder()
	h.GetSessionStatus(w, newRequest(http.MethodGet, "/sessions/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.SessionStatusResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.SessionStatusQRNeeded, resp.Status)
	assert.Equal(t, "2@abc", resp.QRCode)
}

func TestHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		health         *service.HealthStatus
		expectedStatus int
	}{
		{
			name: "healthy",
			health: &service.HealthStatus{
				Status:           service.HealthStatusHealthy,
				DispatcherStatus: service.DispatcherStatusRunning,
				DatabaseStatus:   service.ComponentStatusConnected,
				RedisStatus:      service.ComponentStatusConnected,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "degraded still serves 200",
			health: &service.HealthStatus{
				Status:           service.HealthStatusDegraded,
				DispatcherStatus: service.DispatcherStatusStopped,
				DatabaseStatus:   service.ComponentStatusConnected,
				RedisStatus:      service.ComponentStatusDisconnected,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			health: &service.HealthStatus{
				Status:         service.HealthStatusUnhealthy,
				DatabaseStatus: service.ComponentStatusDisconnected,
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHealth := mocks.NewMockHealthService(ctrl)
			mockHealth.EXPECT().GetHealth().Return(tt.health)

			h := handler.NewHandler(&service.Service{Health: mockHealth}, zap.NewNop())

			w := httptest.NewRecorder()
			h.HealthCheck(w, newRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp struct {
				Status string `json:"status"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.health.Status, resp.Status)
		})
	}
}
