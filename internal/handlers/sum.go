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

// TransactionSummer defines the interface that the service must implement.
type TransactionSummer interface {
	Sum(ctx context.Context, id int64) (float64, error)
}

// NewSumTransactionHandler returns an HTTP handler for subtree sums.
// @Summary Sum a transaction subtree
// @Description Sum of the amount of the transaction and of all transactions transitively linked to it by parent_id.
// @Tags transactions
// @Produce json
// @Param id path int true "Root transaction id"
// @Success 200 {object} models.SumResponse "Subtree sum"
// @Failure 400 {object} models.ErrorResponse "Invalid parent id"
// @Router /sum/{id} [get]
func NewSumTransactionHandler(svc TransactionSummer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		if strings.TrimSpace(rawID) == "" {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		id, err := validators.ParseID(validators.FieldParentID, rawID)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sum, err := svc.Sum(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrInvalidParent) {
				writeError(w, http.StatusBadRequest, MsgInvalidParent)
				return
			}
			logger.Log.Errorw("failed to sum transactions", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.SumResponse{Sum: sum})
	}
}
