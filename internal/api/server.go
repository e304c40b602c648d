package api

import (
	"github.com/gin-gonic/gin"

	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/httpserver"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/telemetry"
)

// NewServer builds the HTTP server with the full route table installed.
func NewServer(cfg *config.Config, handler *Handler, provider *telemetry.Provider, log logger.Logger) *httpserver.Server {
	serverCfg := httpserver.NewConfig(cfg.Service.Name, cfg.Service.Port)
	serverCfg.Debug = cfg.Service.Debug
	serverCfg.ServiceVersion = cfg.Service.Version

	return httpserver.NewServer(serverCfg, log, func(router *gin.Engine) {
		SetupRoutes(router, handler, provider)
	})
}
