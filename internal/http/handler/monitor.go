package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tonwatch/internal/core"
	"tonwatch/internal/http/handler/middleware"
	"tonwatch/internal/http/payload"
	"tonwatch/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	Authenticate     = "POST /ton/authenticate"
	GetTransactions  = "GET /ton/transactions"
	GetWalletBalance = "GET /ton/balance"
	GetStats         = "GET /ton/stats"
	SyncTransactions = "POST /ton/sync"
	MarkProcessed    = "POST /ton/transactions/{hash}/processed"
	MonitorStatus    = "GET /ton/monitor/status"
	MonitorStart     = "POST /ton/monitor/start"
	MonitorStop      = "POST /ton/monitor/stop"
	NextDeposit      = "GET /ton/deposits/next"
	LatestDeposits   = "GET /ton/deposits/latest"
	StreamDeposits   = "GET /ton/deposits/stream"
)

const (
	authTokenHeader    = "AUTH_TOKEN"
	defaultListLimit   = 10
	defaultPopTimeout  = 30 * time.Second
	maxPopTimeout      = 60 * time.Second
	streamPingInterval = 15 * time.Second
)

type MonitorHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	transfers        TransferService
	monitor          DepositMonitor
}

func NewMonitorHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	transferService TransferService,
	monitor DepositMonitor,
) *MonitorHandler {
	return &MonitorHandler{
		logs:             logger,
		requestValidator: requestValidator,
		transfers:        transferService,
		monitor:          monitor,
	}
}

func (h *MonitorHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.transfers.Authenticate(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	filter, hasFilters, err := transferFilterFromQuery(values)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid filter parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	var records []core.TransferRecord
	if hasFilters {
		records, err = h.transfers.GetFiltered(r.Context(), filter)
	} else {
		records, err = h.transfers.GetRecent(r.Context(), filter.Limit)
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("get transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransferRecord{
		"transactions": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleGetWalletBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	balance, err := h.transfers.WalletBalance(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve wallet balance",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get wallet balance",
			"error", err,
			"handler", GetWalletBalance,
			"request_id", requestId)
		return
	}

	h.respond(w, balance, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.transfers.Stats(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve stats",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get stats",
			"error", err,
			"handler", GetStats,
			"request_id", requestId)
		return
	}

	h.respond(w, stats, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, SyncTransactions, requestId) {
		return
	}

	syncPayload := payload.SyncRequest{}
	if r.Body != nil && r.ContentLength > 0 {
		if err := h.requestValidator.DecodeJSONPayload(r, &syncPayload); err != nil {
			h.respond(w, Response{
				Message: "Could not sync transactions",
				Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			h.logs.Errorw("failed to decode sync payload", "error", err, "handler", SyncTransactions, "request_id", requestId)
			return
		}
	}

	fresh, err := h.transfers.SyncNew(r.Context(), syncPayload.EffectiveLimit())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sync transactions",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to sync transactions",
			"error", err,
			"handler", SyncTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"status":           "success",
		"new_transactions": len(fresh),
		"message":          fmt.Sprintf("Found %d new transactions", len(fresh)),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleMarkProcessed(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, MarkProcessed, requestId) {
		return
	}

	txHash := r.PathValue("hash")
	if txHash == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "hash parameter is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	err := h.transfers.MarkProcessed(r.Context(), txHash)
	if err != nil {
		resp := Response{Message: "Could not mark transaction processed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTransferNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to mark transaction processed",
			"error", err,
			"hash", txHash,
			"handler", MarkProcessed,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"status": "success", "tx_hash": txHash}, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleMonitorStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.monitor.Status(), http.StatusOK, requestID(r))
}

func (h *MonitorHandler) HandleMonitorStart(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, MonitorStart, requestId) {
		return
	}

	h.respond(w, h.monitor.Start(), http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleMonitorStop(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, MonitorStop, requestId) {
		return
	}

	h.respond(w, h.monitor.Stop(), http.StatusOK, requestId)
}

// HandleNextDeposit parks the caller on the blocking queue. A timeout is
// a normal empty response, not an error.
func (h *MonitorHandler) HandleNextDeposit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	timeout := defaultPopTimeout
	if raw := r.URL.Query().Get("timeout"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			h.respond(w, Response{
				Message: "Request failed",
				Error:   fmt.Sprintf("invalid timeout parameter %q", raw),
			}, http.StatusBadRequest,
				requestId)
			return
		}
		timeout = time.Duration(seconds) * time.Second
		if timeout > maxPopTimeout {
			timeout = maxPopTimeout
		}
	}

	event, ok := h.monitor.NextDeposit(timeout)
	if !ok {
		h.respond(w, map[string]any{
			"deposit": nil,
			"status":  "timeout",
		}, http.StatusOK, requestId)
		return
	}

	h.respond(w, map[string]any{
		"deposit": event,
		"status":  "ok",
	}, http.StatusOK, requestId)
}

func (h *MonitorHandler) HandleLatestDeposits(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respond(w, Response{
				Message: "Request failed",
				Error:   fmt.Sprintf("invalid limit parameter %q", raw),
			}, http.StatusBadRequest,
				requestId)
			return
		}
		limit = parsed
	}

	deposits := h.monitor.LatestDeposits(limit)
	h.respond(w, map[string]any{
		"deposits": deposits,
		"count":    len(deposits),
	}, http.StatusOK, requestId)
}

// HandleStreamDeposits pushes deposit events to the client as
// server-sent events until the client disconnects.
func (h *MonitorHandler) HandleStreamDeposits(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respond(w, Response{
			Message: "Streaming unsupported",
			Error:   "response writer does not support flushing",
		}, http.StatusInternalServerError,
			requestId)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cancel := h.monitor.Subscribe()
	defer cancel()

	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()

	h.logs.Infow("deposit stream opened", "request_id", requestId)

	for {
		select {
		case <-r.Context().Done():
			h.logs.Infow("deposit stream closed", "request_id", requestId)
			return
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				h.logs.Errorw("failed to marshal deposit event", "error", err, "request_id", requestId)
				continue
			}
			fmt.Fprintf(w, "event: deposit\ndata: %s\n\n", data)
			flusher.Flush()
		case <-ping.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}

// authorized checks the AUTH_TOKEN header on mutating endpoints.
func (h *MonitorHandler) authorized(w http.ResponseWriter, r *http.Request, handlerName, requestId string) bool {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		h.respond(w, Response{
			Message: "Unauthorized",
			Error:   "missing auth token",
		}, http.StatusUnauthorized,
			requestId)
		return false
	}

	if err := h.transfers.ValidateToken(token); err != nil {
		h.respond(w, Response{
			Message: "Unauthorized",
			Error:   "invalid auth token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("auth token rejected",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return false
	}

	return true
}

func (h *MonitorHandler) respond(w http.ResponseWriter, resp any, statusCode int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	if requestId != "" {
		w.Header().Set("X-Request-Id", requestId)
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response", "error", err, "request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// transferFilterFromQuery builds the store filter from query parameters.
// Dates accept "2006-01-02 15:04:05" or "2006-01-02"; a bare to-date is
// extended to end of day.
func transferFilterFromQuery(values url.Values) (repository.TransferFilter, bool, error) {
	filter := repository.TransferFilter{Limit: defaultListLimit}
	hasFilters := false

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, false, fmt.Errorf("invalid limit parameter %q", raw)
		}
		filter.Limit = limit
	}

	if raw := values.Get("min_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, false, fmt.Errorf("invalid min_amount parameter %q", raw)
		}
		filter.MinAmount = &amount
		hasFilters = true
	}

	if raw := values.Get("max_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, false, fmt.Errorf("invalid max_amount parameter %q", raw)
		}
		filter.MaxAmount = &amount
		hasFilters = true
	}

	if sender := values.Get("sender_address"); sender != "" {
		filter.SenderSubstring = sender
		hasFilters = true
	}

	if raw := values.Get("from_date"); raw != "" {
		ts, err := parseDateParam(raw, false)
		if err != nil {
			return filter, false, fmt.Errorf("invalid from_date parameter %q", raw)
		}
		filter.FromTime = &ts
		hasFilters = true
	}

	if raw := values.Get("to_date"); raw != "" {
		ts, err := parseDateParam(raw, true)
		if err != nil {
			return filter, false, fmt.Errorf("invalid to_date parameter %q", raw)
		}
		filter.ToTime = &ts
		hasFilters = true
	}

	return filter, hasFilters, nil
}

func parseDateParam(raw string, endOfDay bool) (int64, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t.Unix(), nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return 0, err
	}
	if endOfDay {
		return t.Unix() + 86399, nil
	}
	return t.Unix(), nil
}
