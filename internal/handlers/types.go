package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/transaction-service/internal/logger"
)

// TransactionTypeLister defines the interface that the service must implement.
type TransactionTypeLister interface {
	ListIDsByType(ctx context.Context, txType string) ([]int64, error)
}

// NewListTransactionIDsByTypeHandler returns an HTTP handler listing ids of one type.
// @Summary List transaction ids by type
// @Description Ids are returned in creation order. Unknown types yield an empty list.
// @Tags transactions
// @Produce json
// @Param type path string true "Transaction type"
// @Success 200 {array} int "Transaction ids"
// @Router /types/{type} [get]
func NewListTransactionIDsByTypeHandler(svc TransactionTypeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txType := chi.URLParam(r, "type")
		if txType == "" {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		ids, err := svc.ListIDsByType(r.Context(), txType)
		if err != nil {
			logger.Log.Errorw("failed to list transactions by type", "type", txType, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if ids == nil {
			ids = []int64{}
		}

		writeJSON(w, http.StatusOK, ids)
	}
}
