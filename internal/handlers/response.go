package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
)

//go:generate mockgen -source=create.go -destination=create_mock.go -package=handlers
//go:generate mockgen -source=get.go -destination=get_mock.go -package=handlers
//go:generate mockgen -source=types.go -destination=types_mock.go -package=handlers
//go:generate mockgen -source=sum.go -destination=sum_mock.go -package=handlers
//go:generate mockgen -source=list.go -destination=list_mock.go -package=handlers

// Client facing error messages.
const (
	MsgBadRequest         = "Bad Request"
	MsgNotFound           = "Not found"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgInvalidTransaction = "Invalid transaction id"
	MsgInvalidParent      = "Invalid parent id"
	MsgDuplicateFormat    = "Transaction with id %d already exists. Choose another id"
	MsgInternalError      = "Internal server error"
)

var statusOK = models.StatusResponse{Status: "ok"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// NewNotFoundHandler answers unmatched routes and empty path segments.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, MsgNotFound)
	}
}

// NewMethodNotAllowedHandler answers known routes requested with another method.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}
