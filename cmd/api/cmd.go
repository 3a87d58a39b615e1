package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/monexapp/monex-backend/internal/bootstrap"
	"github.com/monexapp/monex-backend/internal/config"
	"github.com/monexapp/monex-backend/internal/handlers"
	"github.com/monexapp/monex-backend/internal/response"
	"github.com/monexapp/monex-backend/internal/router"
	"github.com/monexapp/monex-backend/internal/services"
	"github.com/monexapp/monex-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// .env is optional; Cloud Run injects the real environment
	_ = godotenv.Load()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	gstore := store.NewGoalStore(bs.Firestore)
	dstore := store.NewDebtStore(bs.Firestore)
	cstore := store.NewCardStore(bs.Firestore)
	lstore := store.NewLimitStore(bs.Firestore)

	// services
	fserv := services.NewFinanceService(tstore, gstore, dstore, cstore, lstore, services.DefaultPlannerConfig())
	pserv := services.NewProfileService(ustore)
	aiserv := services.NewAIService(bs.VertexAdapter, fserv, pserv)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.FinanceSvc = fserv
	deps.AISvc = aiserv
	deps.ProfileSvc = pserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
