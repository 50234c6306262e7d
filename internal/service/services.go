package service

import (
	"github.com/courtlens/ecourts-gateway/internal/adapter"
	"github.com/courtlens/ecourts-gateway/internal/config"
	"github.com/courtlens/ecourts-gateway/internal/crypto"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/validators"
)

type Services struct {
	Gateway GatewayService
}

func NewServices(codec crypto.EnvelopeCodec, transport *adapter.Transport, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Gateway: NewGatewayService(codec, transport, validators.NewRequestValidator(), cfg.Upstream, logger),
	}
}
