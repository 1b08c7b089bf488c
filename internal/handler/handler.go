// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/middleware"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/scheduler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/service"
)

const (
	errorCodeNotFound                = "NOT_FOUND"
	errorCodeBadRequest              = "BAD_REQUEST"
	errorCodeBillingNotConfigured    = "BILLING_NOT_CONFIGURED"
	errorCodeBillingInactive         = "BILLING_INACTIVE"
	errorCodeNoLiveInstance          = "NO_LIVE_INSTANCE"
	errorCodeDispatcherAlreadyActive = "DISPATCHER_ALREADY_RUNNING"
	errorCodeDispatcherNotActive     = "DISPATCHER_NOT_RUNNING"
)

const (
	errorMessageInvalidBody           = "Request body is invalid"
	errorMessageFailedToInitialize    = "Failed to initialize session"
	errorMessageFailedToDisconnect    = "Failed to disconnect session"
	errorMessageFailedToGetStatus     = "Failed to get session status"
	errorMessageFailedToLaunch        = "Failed to launch campaign"
	errorMessageFailedToSendTemplate  = "Failed to send template message"
	errorMessageFailedToSchedule      = "Failed to schedule reminders"
	errorMessageFailedToIngestEvent   = "Failed to ingest provider event"
	errorMessageFailedToGetMessages   = "Failed to retrieve message logs"
	errorMessageFailedToStartDispatch = "Failed to start dispatcher"
	errorMessageFailedToStopDispatch  = "Failed to stop dispatcher"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes builds the API sub-router. Authentication and the shared middleware
// chain are applied by the caller; the router is mounted under /api.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions/initialize", h.InitializeSession)
	r.Post("/sessions/disconnect", h.DisconnectSession)
	r.Get("/sessions/status", h.GetSessionStatus)

	r.Post("/campaigns/run", h.RunCampaign)
	r.Post("/messages/template", h.SendTemplateMessage)
	r.Post("/reminders/schedule", h.ScheduleReminders)

	r.Post("/provider/events", h.IngestProviderEvent)

	r.Get("/messages", h.GetMessageLogs)

	r.Post("/dispatch", h.StartDispatcher)
	r.Delete("/dispatch", h.StopDispatcher)

	return r
}

func (h *Handler) InitializeSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.Session.Initialize(r.Context(), userID)
	if err != nil {
		h.logError(r, "Failed to initialize session", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToInitialize)
		return
	}

	render.JSON(w, r, result)
}

func (h *Handler) DisconnectSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.Session.Disconnect(r.Context(), userID)
	if err != nil {
		h.logError(r, "Failed to disconnect session", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToDisconnect)
		return
	}

	render.JSON(w, r, result)
}

func (h *Handler) GetSessionStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.Session.GetStatus(r.Context(), userID)
	if err != nil {
		h.logError(r, "Failed to get session status", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToGetStatus)
		return
	}

	render.JSON(w, r, result)
}

func (h *Handler) RunCampaign(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var params service.CampaignParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidBody)
		return
	}

	campaign, err := h.service.Campaign.Launch(r.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignMissingContent):
			h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Template not found")
		default:
			h.logError(r, "Failed to launch campaign", err)
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToLaunch)
		}
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, campaign)
}

type templateMessageRequest struct {
	TemplateID int64             `json:"template_id"`
	ClienteID  int64             `json:"cliente_id"`
	Extra      map[string]string `json:"extra,omitempty"`
}

type templateMessageResponse struct {
	Sent bool `json:"sent"`
}

func (h *Handler) SendTemplateMessage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req templateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidBody)
		return
	}

	sent, err := h.service.Message.SendTemplateMessage(r.Context(), userID, req.TemplateID, req.ClienteID, req.Extra)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Template or client not found")
			return
		}
		h.logError(r, "Failed to send template message", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToSendTemplate)
		return
	}

	render.JSON(w, r, templateMessageResponse{Sent: sent})
}

func (h *Handler) ScheduleReminders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.Reminder.Schedule(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBillingNotConfigured):
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeBillingNotConfigured, err.Error())
		case errors.Is(err, service.ErrBillingInactive):
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeBillingInactive, err.Error())
		default:
			h.logError(r, "Failed to schedule reminders", err)
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToSchedule)
		}
		return
	}

	render.JSON(w, r, result)
}

// providerEventRequest is the webhook payload the relay posts back when the
// provider emits an event for one of our instances.
type providerEventRequest struct {
	Type        string `json:"type"`
	QRCode      string `json:"qr_code,omitempty"`
	Status      string `json:"status,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	From        string `json:"from,omitempty"`
	Text        string `json:"text,omitempty"`
	FromSelf    bool   `json:"from_self,omitempty"`
}

func (h *Handler) IngestProviderEvent(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req providerEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidBody)
		return
	}

	evt, err := req.toEvent()
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, err.Error())
		return
	}

	if err := h.service.Session.HandleProviderEvent(r.Context(), userID, evt); err != nil {
		if errors.Is(err, service.ErrNoLiveInstance) {
			h.sendError(w, r, http.StatusConflict, errorCodeNoLiveInstance, err.Error())
			return
		}
		h.logError(r, "Failed to ingest provider event", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToIngestEvent)
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, map[string]string{"status": "accepted"})
}

func (req *providerEventRequest) toEvent() (provider.Event, error) {
	switch req.Type {
	case "qr":
		if req.QRCode == "" {
			return nil, errors.New("qr event requires qr_code")
		}
		return provider.QRIssued{Code: req.QRCode}, nil
	case "status":
		if req.Status == "" {
			return nil, errors.New("status event requires status")
		}
		return provider.StatusChanged{State: req.Status, PhoneNumber: req.PhoneNumber}, nil
	case "message":
		return provider.MessageReceived{From: req.From, Text: req.Text, FromSelf: req.FromSelf}, nil
	default:
		return nil, errors.New("unknown event type")
	}
}

func (h *Handler) GetMessageLogs(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	result, err := h.service.Message.GetMessageLogs(r.Context(), userID, page, limit)
	if err != nil {
		h.logError(r, "Failed to get message logs", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToGetMessages)
		return
	}

	render.JSON(w, r, result)
}

func (h *Handler) StartDispatcher(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Dispatch.Start(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeDispatcherAlreadyActive, err.Error())
			return
		}
		h.logError(r, "Failed to start dispatcher", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartDispatch)
		return
	}

	render.JSON(w, r, map[string]string{"status": service.DispatcherStatusRunning})
}

func (h *Handler) StopDispatcher(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Dispatch.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeDispatcherNotActive, err.Error())
			return
		}
		h.logError(r, "Failed to stop dispatcher", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopDispatch)
		return
	}

	render.JSON(w, r, map[string]string{"status": service.DispatcherStatusStopped})
}

type healthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	DispatcherStatus     string    `json:"dispatcher_status,omitempty"`
	DatabaseStatus       string    `json:"database_status,omitempty"`
	RedisStatus          string    `json:"redis_status,omitempty"`
	CircuitBreakerStatus string    `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string    `json:"circuit_breaker_state,omitempty"`
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := healthResponse{
		Status:               health.Status,
		Timestamp:            time.Now(),
		DispatcherStatus:     health.DispatcherStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		CircuitBreakerState:  health.CircuitBreakerState,
	}

	if health.Status == service.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
