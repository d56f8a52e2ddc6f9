package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies accepted by the API handlers.
const maxBodyBytes = 1 << 20

// dateLayout is the wire format of calendar days.
const dateLayout = time.DateOnly

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// handleError maps domain errors to stable API codes. Anything unexpected
// is logged and reported as INTERNAL without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidIdentity):
		writeError(w, http.StatusUnprocessableEntity, "INVALID_IDENTITY", err.Error())

	case errors.Is(err, domain.ErrValidation):
		detail := errorDetail{Code: "VALIDATION", Message: "validation failed"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: detail})

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", err.Error())

	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")

	default:
		attrs := append([]slog.Attr{
			slog.String("error", err.Error()),
			slog.String("route", r.Pattern),
		}, ctxutil.LogAttrs(r.Context())...)
		log.LogAttrs(r.Context(), slog.LevelError, "unexpected API error", attrs...)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

// decodeJSON reads the request body into v. A missing or malformed body is
// reported as a validation error on the "body" field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	err := decodeOptionalJSON(w, r, v)
	if errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "required")
	}
	return err
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
// An empty body leaves v untouched and returns io.EOF.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err))
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date (YYYY-MM-DD)")
	}
	return t, nil
}

func pathDate(r *http.Request, name string) (time.Time, error) {
	return parseDate(name, r.PathValue(name))
}
