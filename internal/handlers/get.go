package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
	"github.com/sbilibin2017/transaction-service/internal/services"
	"github.com/sbilibin2017/transaction-service/internal/validators"
)

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	Get(ctx context.Context, id int64) (*models.Transaction, error)
}

// NewGetTransactionHandler returns an HTTP handler that returns one transaction.
// @Summary Get a transaction
// @Description Returns the fields supplied when the transaction was created.
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction id"
// @Success 200 {object} models.TransactionResponse "Transaction"
// @Failure 400 {object} models.ErrorResponse "Invalid transaction id"
// @Router /transaction/{id} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
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

		tx, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				writeError(w, http.StatusBadRequest, MsgInvalidTransaction)
				return
			}
			logger.Log.Errorw("failed to get transaction", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.NewTransactionResponse(*tx))
	}
}
