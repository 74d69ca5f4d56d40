package services

import (
	"context"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
)

// SettingsService reads and writes the singleton documents. A setting that was never saved
// reads as its default.
type SettingsService struct {
	store       SettingsStore
	opayBaseURL string
}

func NewSettingsService(store SettingsStore, opayBaseURL string) *SettingsService {
	return &SettingsService{store: store, opayBaseURL: opayBaseURL}
}

func (s *SettingsService) load(ctx context.Context, typ models.SettingType, out interface{}) error {
	err := s.store.Get(ctx, typ, out)
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

func (s *SettingsService) Bonus(ctx context.Context) (models.BonusSettings, error) {
	var bonus models.BonusSettings
	err := s.load(ctx, models.SettingBonus, &bonus)
	return bonus, err
}

func (s *SettingsService) UpdateBonus(ctx context.Context, bonus models.BonusSettings) (models.BonusSettings, error) {
	bonus.ReferBonus = roundAmount(bonus.ReferBonus)
	bonus.WelcomeBonus = roundAmount(bonus.WelcomeBonus)
	return bonus, s.store.Put(ctx, models.SettingBonus, bonus)
}

func (s *SettingsService) Limits(ctx context.Context) (models.LimitSettings, error) {
	var limits models.LimitSettings
	err := s.load(ctx, models.SettingLimits, &limits)
	return limits, err
}

func (s *SettingsService) UpdateLimits(ctx context.Context, limits models.LimitSettings) (models.LimitSettings, error) {
	if limits.MaxWithdraw > 0 && limits.MaxWithdraw < limits.MinWithdraw {
		return models.LimitSettings{}, ErrBelowMinimum
	}
	return limits, s.store.Put(ctx, models.SettingLimits, limits)
}

func (s *SettingsService) Opay(ctx context.Context) (models.OpaySettings, error) {
	var opay models.OpaySettings
	if err := s.load(ctx, models.SettingOpay, &opay); err != nil {
		return models.OpaySettings{}, err
	}
	if opay.BaseURL == "" {
		opay.BaseURL = s.opayBaseURL
	}
	return opay, nil
}

func (s *SettingsService) UpdateOpay(ctx context.Context, opay models.OpaySettings) (models.OpaySettings, error) {
	opay.UpdatedAt = time.Now().UTC()
	return opay, s.store.Put(ctx, models.SettingOpay, opay)
}

func (s *SettingsService) ThemeColor(ctx context.Context) (models.ThemeColor, error) {
	theme := models.ThemeColor{
		Primary:    "#1f2937",
		Secondary:  "#f59e0b",
		Background: "#111827",
		Text:       "#f9fafb",
		Accent:     "#10b981",
	}
	err := s.load(ctx, models.SettingThemeColor, &theme)
	return theme, err
}

func (s *SettingsService) UpdateThemeColor(ctx context.Context, theme models.ThemeColor) (models.ThemeColor, error) {
	return theme, s.store.Put(ctx, models.SettingThemeColor, theme)
}

func (s *SettingsService) HomeControl(ctx context.Context) (models.HomeControl, error) {
	home := models.HomeControl{ShowBanner: true, Sections: []string{}}
	err := s.load(ctx, models.SettingHomeControl, &home)
	if home.Sections == nil {
		home.Sections = []string{}
	}
	return home, err
}

func (s *SettingsService) UpdateHomeControl(ctx context.Context, home models.HomeControl) (models.HomeControl, error) {
	if home.Sections == nil {
		home.Sections = []string{}
	}
	return home, s.store.Put(ctx, models.SettingHomeControl, home)
}
