package store

import (
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

// Storages aggregates every persistence component used by the services.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AvatarStorage     AvatarStorage
}

// NewStorages wires the Postgres repositories on db and the file-system
// avatar storage under cfg.Files.AvatarDir.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	avatars, err := NewFileAvatarStorage(cfg.Files.AvatarDir, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating avatar storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AvatarStorage:     avatars,
	}, nil
}
