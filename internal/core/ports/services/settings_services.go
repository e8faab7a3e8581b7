package services

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
)

// SettingsSvcFacade is the configuration reader over the per-owner key/value store.
type SettingsSvcFacade interface {
	// GetSettings returns the owner's settings, seeding defaults for any key
	// absent on first read.
	GetSettings(ctx context.Context, ownerID string) (domain.Settings, error)

	// UpdateSetting writes one known key.
	UpdateSetting(ctx context.Context, ownerID string, key string, value string) error

	// Classification resolves the configured category ids into the explicit
	// category-to-obligation-type mapping used by the classification hook.
	Classification(ctx context.Context, ownerID string) (domain.Classification, error)
}
