package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler dumping the whole ledger.
// @Summary List all transactions
// @Description Every stored transaction, including its id, in creation order.
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction "Transactions"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}
		if txs == nil {
			txs = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, txs)
	}
}
