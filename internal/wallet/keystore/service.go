package keystore

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Service wraps the package-level Decrypt/Encrypt functions with logging
// and metrics. Callers that don't need either can call Decrypt/Encrypt
// directly; Service exists for the common case of wiring this package into
// a larger application the way chapool-go-wallet's other wallet services
// are wired.
type Service interface {
	Decrypt(ctx context.Context, doc []byte, password Password, progress ProgressFunc) (Account, error)
	Encrypt(ctx context.Context, account Account, password Password, opts EncryptOptions, progress ProgressFunc) ([]byte, error)
}

type service struct {
	log           zerolog.Logger
	defaultScrypt ScryptProfile
}

// NewService builds a Service. reg may be nil, in which case this
// package's metrics are never registered and Service runs unmonitored.
// defaultScrypt is used for Encrypt calls whose EncryptOptions.Scrypt is
// nil; pass StandardScryptProfile() for production use, LightScryptProfile()
// for tests and interactive tooling.
//
//nolint:ireturn // returning the interface is intentional for dependency injection
func NewService(log zerolog.Logger, reg prometheus.Registerer, defaultScrypt ScryptProfile) (Service, error) {
	if err := registerMetrics(reg); err != nil {
		return nil, err
	}
	return &service{
		log:           log.With().Str("component", "keystore").Logger(),
		defaultScrypt: defaultScrypt,
	}, nil
}

func (s *service) Decrypt(ctx context.Context, doc []byte, password Password, progress ProgressFunc) (Account, error) {
	account, err := Decrypt(ctx, doc, password, progress)
	if err != nil {
		opsTotal.WithLabelValues("decrypt", "error").Inc()
		s.log.Error().Err(err).Msg("keystore decrypt failed")
		return Account{}, err
	}
	opsTotal.WithLabelValues("decrypt", "ok").Inc()
	s.log.Info().Str("address", account.Address.Hex()).Bool("has_mnemonic", account.Mnemonic != "").Msg("keystore decrypted")
	return account, nil
}

func (s *service) Encrypt(ctx context.Context, account Account, password Password, opts EncryptOptions, progress ProgressFunc) ([]byte, error) {
	if opts.Scrypt == nil {
		opts.Scrypt = &s.defaultScrypt
	}
	doc, err := Encrypt(ctx, account, password, opts, progress)
	if err != nil {
		opsTotal.WithLabelValues("encrypt", "error").Inc()
		s.log.Error().Err(err).Msg("keystore encrypt failed")
		return nil, err
	}
	opsTotal.WithLabelValues("encrypt", "ok").Inc()
	s.log.Info().Str("address", account.Address.Hex()).Msg("keystore encrypted")
	return doc, nil
}
