package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/utils"
)

// settingsService resolves the flat per-owner key/value configuration,
// seeding defaults for keys absent on first read.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, ownerID string) (domain.Settings, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}

	stored, err := s.settingsRepo.FindSettings(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	resolved := make(domain.Settings, len(stored))
	for k, v := range stored {
		resolved[k] = v
	}
	for key, def := range domain.DefaultSettings() {
		if _, ok := resolved[key]; ok {
			continue
		}
		resolved[key] = def
		if err := s.settingsRepo.UpsertSetting(ctx, ownerID, key, def); err != nil {
			s.LogError(ctx, err, "Failed to seed default setting",
				slog.String("owner_id", ownerID),
				slog.String("key", key))
			return nil, fmt.Errorf("failed to seed default setting %s: %w", key, err)
		}
	}
	return resolved, nil
}

func (s *settingsService) UpdateSetting(ctx context.Context, ownerID string, key string, value string) error {
	if err := s.RequireOwner(ownerID); err != nil {
		return err
	}
	if !domain.KnownSettingKey(key) {
		return fmt.Errorf("unknown setting key %q: %w", key, apperrors.ErrValidation)
	}
	if key == domain.SettingBaseCurrency {
		value = utils.NormalizeCurrencyCode(value)
		if !utils.IsValidCurrencyCode(value) {
			return fmt.Errorf("invalid currency code %q: %w", value, apperrors.ErrValidation)
		}
	}

	if err := s.settingsRepo.UpsertSetting(ctx, ownerID, key, value); err != nil {
		s.LogError(ctx, err, "Failed to update setting",
			slog.String("owner_id", ownerID),
			slog.String("key", key))
		return fmt.Errorf("failed to update setting: %w", err)
	}
	s.LogInfo(ctx, "Setting updated", slog.String("key", key))
	return nil
}

func (s *settingsService) Classification(ctx context.Context, ownerID string) (domain.Classification, error) {
	settings, err := s.GetSettings(ctx, ownerID)
	if err != nil {
		return domain.Classification{}, err
	}
	return domain.NewClassification(settings), nil
}
