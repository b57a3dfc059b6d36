package service

import (
	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
)

type Services struct {
	AccountService AccountService
	ContactService ContactService
}

// NewServices builds both services with their input validation decorators.
func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	issuer := crypto.NewTokenIssuer(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration)

	accountService := NewAccountService(storages.UserRepository, storages.AvatarStorage, mailer, hasher, issuer, cfg.App, logger)
	contactService := NewContactService(storages.ContactRepository, logger)

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accountService),
		ContactService: NewContactValidationService().Wrap(contactService),
	}
}
