package handler

import (
	"github.com/tgusarov/notekeep/internal/handler/http"
	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
