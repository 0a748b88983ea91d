package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// maxBodyBytes caps request bodies; every payload here is a few fields.
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognised is
// logged and hidden behind a 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrAlreadyExists) {
			status = http.StatusConflict
		}
		writeJSON(w, status, validationResponse(ve))
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Resource already exists")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "You can only modify your own records")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func validationResponse(ve *domain.ValidationError) errorResponse {
	resp := errorResponse{Error: "Invalid input"}
	if first, ok := ve.First(); ok {
		resp.Error = first.Message
	}
	for _, fe := range ve.Errors {
		resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Rule: fe.Rule.String(), Message: fe.Message})
	}
	return resp
}

// decodeJSON reads a JSON body into v. Malformed bodies are reported as a
// validation error on the "body" field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", domain.RuleFormat, "invalid request body")
	}
	return nil
}

// pathID parses the {id} wildcard of the matched route.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", domain.RuleFormat, "invalid id")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, domain.RuleFormat, fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, domain.RuleFormat, fmt.Sprintf("%s must be a UUID", name))
	}
	return &id, nil
}

// queryPage reads limit and offset. Zero values are normalised by the services.
func queryPage(r *http.Request) (domain.Page, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.Page{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Limit: limit, Offset: offset}, nil
}
