package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/excuse-backend/internal/domain"
	"github.com/heartmarshall/excuse-backend/internal/service/excuse"
)

const maxBodyBytes = 1 << 16

// excuseService defines the minimal interface needed by ExcuseHandler.
type excuseService interface {
	Generate(ctx context.Context, input excuse.GenerateInput) (*excuse.GeneratedExcuse, error)
	Emergency(ctx context.Context, input excuse.EmergencyInput) (*excuse.EmergencyExcuse, error)
	Recent(ctx context.Context, input excuse.RecentInput) ([]domain.Excuse, error)
}

// ExcuseHandler serves excuse REST endpoints.
type ExcuseHandler struct {
	svc excuseService
	log *slog.Logger
}

// NewExcuseHandler creates an ExcuseHandler.
func NewExcuseHandler(svc excuseService, logger *slog.Logger) *ExcuseHandler {
	return &ExcuseHandler{svc: svc, log: logger.With("handler", "excuse")}
}

type generateRequest struct {
	Category string `json:"category"`
	Tone     string `json:"tone"`
}

type emergencyRequest struct {
	CallType string `json:"callType"`
}

type excuseResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Tone      string    `json:"tone"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type generatedResponse struct {
	excuseResponse
	Believability int    `json:"believability"`
	Source        string `json:"source"`
}

type fakeContactResponse struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

type emergencyResponse struct {
	generatedResponse
	CallType    string              `json:"callType"`
	FakeContact fakeContactResponse `json:"fakeContact"`
}

// Generate handles POST /api/excuses/generate.
func (h *ExcuseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), excuse.GenerateInput{
		Category: domain.Category(req.Category),
		Tone:     domain.Tone(req.Tone),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGeneratedResponse(result))
}

// Emergency handles POST /api/excuses/emergency. The body is optional.
func (h *ExcuseHandler) Emergency(w http.ResponseWriter, r *http.Request) {
	var req emergencyRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Emergency(r.Context(), excuse.EmergencyInput{
		CallType: domain.CallType(req.CallType),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, emergencyResponse{
		generatedResponse: toGeneratedResponse(&result.GeneratedExcuse),
		CallType:          result.CallType.String(),
		FakeContact: fakeContactResponse{
			Name:         result.Contact.Name,
			Relationship: result.Contact.Relationship,
		},
	})
}

// Recent handles GET /api/excuses/recent?limit=N. A missing or
// unparseable limit uses the default.
func (h *ExcuseHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	list, err := h.svc.Recent(r.Context(), excuse.RecentInput{Limit: limit})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]excuseResponse, len(list))
	for i, e := range list {
		resp[i] = toExcuseResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ExcuseHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toExcuseResponse(e domain.Excuse) excuseResponse {
	return excuseResponse{
		ID:        e.ID.String(),
		Category:  e.Category.String(),
		Tone:      e.Tone.String(),
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func toGeneratedResponse(g *excuse.GeneratedExcuse) generatedResponse {
	return generatedResponse{
		excuseResponse: toExcuseResponse(g.Excuse),
		Believability:  g.Believability,
		Source:         g.Source.String(),
	}
}
