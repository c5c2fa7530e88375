package main

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	lcssimilarity "github.com/baditaflorin/go_lcs_similarity"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const requestIDHeader = "X-Request-ID"

// SimilarityRequest is the body of POST /similarity. A null or missing
// document is absent and scores 0.
type SimilarityRequest struct {
	Original  *string `json:"original"`
	Candidate *string `json:"candidate"`
}

// SimilarityResponse represents a similarity computation response
type SimilarityResponse struct {
	Score           float64 `json:"score"`
	Percentage      string  `json:"percentage"`
	Flagged         bool    `json:"flagged"`
	Threshold       float64 `json:"threshold"`
	OriginalLength  int     `json:"original_length"`
	CandidateLength int     `json:"candidate_length"`
	LCSLength       int     `json:"lcs_length"`
	ProcessingTime  string  `json:"processing_time"`
	RequestID       string  `json:"request_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type server struct {
	similarity *lcssimilarity.LCSSimilarity
	logger     ports.Logger
	limiter    *ipRateLimiter
	// maxRunes caps each document; 0 disables the cap.
	maxRunes int
}

func newServer(similarity *lcssimilarity.LCSSimilarity, logger ports.Logger, limiter *ipRateLimiter, maxRunes int) *server {
	return &server{
		similarity: similarity,
		logger:     logger,
		limiter:    limiter,
		maxRunes:   maxRunes,
	}
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.SetUserValue(requestIDHeader, requestID)

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set(requestIDHeader, requestID)

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/similarity":
		if !s.limiter.allow(ctx.RemoteIP().String()) {
			s.writeError(ctx, fasthttp.StatusTooManyRequests, "Rate limit exceeded")
			break
		}
		s.handleSimilarity(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleSimilarity scores one document pair
func (s *server) handleSimilarity(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SimilarityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	for _, text := range []*string{req.Original, req.Candidate} {
		if text != nil && s.maxRunes > 0 && utf8.RuneCountInString(*text) > s.maxRunes {
			s.writeError(ctx, fasthttp.StatusRequestEntityTooLarge, "Document exceeds the configured size limit")
			return
		}
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	result := s.similarity.ComputeDocuments(c,
		domain.DocumentFromPtr(req.Original),
		domain.DocumentFromPtr(req.Candidate),
	)

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, SimilarityResponse{
		Score:           result.Score,
		Percentage:      lcssimilarity.FormatResult(result.Score),
		Flagged:         result.Flagged,
		Threshold:       result.Threshold,
		OriginalLength:  result.OriginalLength,
		CandidateLength: result.CandidateLength,
		LCSLength:       result.LCSLength,
		ProcessingTime:  time.Since(start).String(),
		RequestID:       requestIDOf(ctx),
	})
}

func requestIDOf(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDHeader).(string)
	return id
}

// writeJSON writes a JSON response to the context
func (s *server) writeJSON(ctx *fasthttp.RequestCtx, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	ctx.SetBody(body)
}

// writeError writes a JSON error response with the given status
func (s *server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	body, err := json.Marshal(ErrorResponse{Error: message, RequestID: requestIDOf(ctx)})
	if err != nil {
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(body)
}
