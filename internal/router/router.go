package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/monexapp/monex-backend/internal/handlers"
	"github.com/monexapp/monex-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	fh := handlers.NewFinanceHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	gh := handlers.NewGoalHandlers(deps)
	lh := handlers.NewLimitHandlers(deps)
	dh := handlers.NewDebtHandlers(deps)
	ch := handlers.NewCardHandlers(deps)
	ah := handlers.NewAIHandlers(deps)
	ph := handlers.NewProfileHandlers(deps)

	auth := middleware.NewMiddleware(deps.Firebase)
	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)
		r.Mount("/finance", fh.FinanceRoutes())
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/goals", gh.GoalRoutes())
		r.Mount("/limits", lh.LimitRoutes())
		r.Mount("/debts", dh.DebtRoutes())
		r.Mount("/cards", ch.CardRoutes())
		r.Mount("/ai", ah.AIRoutes())
		r.Mount("/profile", ph.ProfileRoutes())
	})

	return r
}
