package utils

import (
	"encoding/json"
	"net/http"

	"indiecon_server/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Envelope is the uniform response shape for every endpoint. ResponseID is
// an opaque correlation id; every failure is logged with it before the
// response is written, so a client report can be matched to server logs.
type Envelope struct {
	ResponseType       string      `json:"responseType"`
	ResponseUniqueCode string      `json:"responseUniqueCode"`
	ResponseMessage    string      `json:"responseMessage"`
	ResponseCode       int         `json:"responseCode"`
	ResponseID         string      `json:"responseId"`
	ResponsePayload    interface{} `json:"responsePayload"`
}

// WriteSuccess writes a success envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, status int, uniqueCode, message string, payload interface{}) {
	writeJSON(w, status, Envelope{
		ResponseType:       "success",
		ResponseUniqueCode: uniqueCode,
		ResponseMessage:    message,
		ResponseCode:       status,
		ResponseID:         uuid.NewString(),
		ResponsePayload:    payload,
	})
}

// WriteError flattens a tagged service error into the envelope. The wrapped
// cause is logged under the correlation id and never sent to the client.
func WriteError(w http.ResponseWriter, logger *zap.SugaredLogger, appErr *apperr.Error) {
	responseID := uuid.NewString()
	if logger != nil {
		logger.Errorw("request failed",
			"responseId", responseID,
			"kind", appErr.Kind,
			"code", appErr.Code,
			"status", appErr.Status,
			"error", appErr.Err,
		)
	}

	writeJSON(w, appErr.Status, Envelope{
		ResponseType:       "error",
		ResponseUniqueCode: appErr.Code,
		ResponseMessage:    appErr.Message,
		ResponseCode:       appErr.Status,
		ResponseID:         responseID,
		ResponsePayload:    nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
