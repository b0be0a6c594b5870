package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/services"
	"github.com/sbilibin2017/transaction-service/internal/validators"
)

var errTrailingData = errors.New("unexpected data after JSON object")

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, id int64, raw map[string]any) error
}

// NewCreateTransactionHandler returns an HTTP handler that stores a new transaction.
// @Summary Create a transaction
// @Description Stores a transaction under a client chosen id. Ids are unique and never overwritten; parent_id must reference an existing transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction id"
// @Param transaction body models.TransactionRequest true "Transaction"
// @Success 200 {object} models.StatusResponse "Transaction stored"
// @Failure 400 {object} models.ErrorResponse "Missing or malformed field, unknown parent or duplicate id"
// @Router /transaction/{id} [post]
// @Router /transaction/{id} [put]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		if strings.TrimSpace(rawID) == "" {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		id, err := validators.ParseID(validators.FieldTransactionID, rawID)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// A malformed body is passed on as empty so the duplicate check still runs first.
		raw, err := decodeObject(r.Body)
		if err != nil {
			logger.Log.Warnw("failed to decode transaction body", "id", id, "error", err)
		}

		if err := svc.Create(r.Context(), id, raw); err != nil {
			var (
				missing *validators.MissingFieldError
				conv    *validators.ConversionError
			)
			switch {
			case errors.Is(err, services.ErrDuplicateTransaction):
				writeError(w, http.StatusBadRequest, fmt.Sprintf(MsgDuplicateFormat, id))
			case errors.Is(err, services.ErrEmptyTransaction):
				writeError(w, http.StatusBadRequest, MsgBadRequest)
			case errors.Is(err, services.ErrInvalidParent):
				writeError(w, http.StatusBadRequest, MsgInvalidParent)
			case errors.As(err, &missing), errors.As(err, &conv):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}

// decodeObject reads exactly one JSON object from body. Trailing data is an error.
func decodeObject(body io.Reader) (map[string]any, error) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return raw, nil
}
