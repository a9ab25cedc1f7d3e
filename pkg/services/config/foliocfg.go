package config

import (
	"context"
	"fmt"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	sectionContentStore = "sanity"
	sectionEmail        = "resend"
)

// Registry reads SaaS credentials from the folio profile file
// (~/.foliocfg by convention), one ini section per provider.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	ContentStore(ctx context.Context) (domain.ContentStoreConfig, error)
	Email(ctx context.Context) (domain.EmailConfig, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile := domain.ConfigProfile{Name: section.Name()}
		switch section.Name() {
		case sectionContentStore:
			profile.Type = domain.ProfileTypeContentStore
		case sectionEmail:
			profile.Type = domain.ProfileTypeEmail
		default:
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) ContentStore(_ context.Context) (domain.ContentStoreConfig, error) {
	section, err := cr.section(sectionContentStore)
	if err != nil {
		return domain.ContentStoreConfig{}, err
	}

	cfg := domain.ContentStoreConfig{
		ProjectID:  section.Key("project_id").String(),
		Dataset:    section.Key("dataset").MustString("production"),
		APIVersion: section.Key("api_version").MustString("v2024-01-01"),
		Token:      section.Key("token").String(),
		UseCDN:     section.Key("use_cdn").MustBool(false),
	}
	if cfg.ProjectID == "" {
		return domain.ContentStoreConfig{}, fmt.Errorf("profile %s is missing project_id", sectionContentStore)
	}
	return cfg, nil
}

func (cr *cfgRegistry) Email(_ context.Context) (domain.EmailConfig, error) {
	section, err := cr.section(sectionEmail)
	if err != nil {
		return domain.EmailConfig{}, err
	}

	return domain.EmailConfig{
		APIKey: section.Key("api_key").String(),
		From:   section.Key("from").String(),
		To:     section.Key("to").String(),
	}, nil
}

func (cr *cfgRegistry) section(name string) (*ini.Section, error) {
	section := cr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return section, nil
}
