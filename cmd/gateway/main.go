package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/courtlens/ecourts-gateway/internal/adapter"
	"github.com/courtlens/ecourts-gateway/internal/config"
	"github.com/courtlens/ecourts-gateway/internal/crypto"
	httphandler "github.com/courtlens/ecourts-gateway/internal/handler/http"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/server"
	"github.com/courtlens/ecourts-gateway/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	log := logger.NewLogger("ecourts-gateway")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	codec, err := crypto.NewEnvelopeCodec(cfg.Upstream.RequestKeyHex, cfg.Upstream.ResponseKeyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating envelope codec")
	}

	transport := adapter.NewTransport(cfg.Upstream, log)
	services := service.NewServices(codec, transport, *cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
