package routers

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/transaction-service/internal/handlers"
	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/middlewares"
	"github.com/sbilibin2017/transaction-service/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// BasePath prefixes every ledger route.
const BasePath = "/transactionservice"

// TransactionService is everything the ledger routes need from the service layer.
type TransactionService interface {
	Create(ctx context.Context, id int64, raw map[string]any) error
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	ListIDsByType(ctx context.Context, txType string) ([]int64, error)
	List(ctx context.Context) ([]models.Transaction, error)
	Sum(ctx context.Context, id int64) (float64, error)
}

// NewTransactionRouter mounts the ledger API under BasePath.
// When swaggerURL is non-empty the swagger UI is served from /swagger/*.
func NewTransactionRouter(svc TransactionService, swaggerURL string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	create := handlers.NewCreateTransactionHandler(svc)

	r.Route(BasePath, func(r chi.Router) {
		r.NotFound(handlers.NewNotFoundHandler())
		r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

		r.Post("/transaction/{id}", create)
		r.Put("/transaction/{id}", create)
		r.Get("/transaction/{id}", handlers.NewGetTransactionHandler(svc))
		r.Get("/types/{type}", handlers.NewListTransactionIDsByTypeHandler(svc))
		r.Get("/sum/{id}", handlers.NewSumTransactionHandler(svc))
		r.Get("/transactions", handlers.NewListTransactionsHandler(svc))
	})

	if swaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	}

	return r
}
