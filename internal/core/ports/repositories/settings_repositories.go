package repositories

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
)

// SettingsRepositoryFacade stores the flat per-owner key/value configuration.
type SettingsRepositoryFacade interface {
	// FindSettings retrieves all setting rows for the owner. Missing keys are
	// simply absent; the service layer applies defaults.
	FindSettings(ctx context.Context, ownerID string) (domain.Settings, error)

	// UpsertSetting writes one key/value pair for the owner.
	UpsertSetting(ctx context.Context, ownerID string, key string, value string) error
}
