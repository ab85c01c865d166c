package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/syndx/forum-api/internal/errors"
	"github.com/syndx/forum-api/internal/logger"
)

// Response envelopes. Success payloads ride under "data"; failures carry a
// message and a status of "fail" (client fault) or "error" (server fault).
type successEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

type failEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	status := "fail"
	if statusCode >= http.StatusInternalServerError {
		status = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(failEnvelope{Status: status, Message: message}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteError translates a service error into the fail envelope, hiding
// internals behind a generic message for unexpected errors.
func WriteError(w http.ResponseWriter, err error) {
	statusCode := internal_errors.StatusCode(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		WriteFail(w, statusCode, "Internal server error")
		return
	}
	WriteFail(w, statusCode, err.Error())
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return internal_errors.NewValidation("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return internal_errors.NewValidation("Required fields missing")
	}
	return nil
}
