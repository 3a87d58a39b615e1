package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/monexapp/monex-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	FinanceSvc      FinanceService
	AISvc           AIService
	ProfileSvc      ProfileService
	Firebase        *auth.Client
}
