package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Effective *domain.Config // Resolved configuration to display
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Config     *domain.Config // Effective configuration
	Path       string         // Config file path
	StoredKeys []string       // Keys present in the store; nil if it cannot list them
	Found      bool           // Whether the file exists
}

// ShowConfig reports where the configuration comes from and what it resolves to.
type ShowConfig struct {
	configManager domain.ConfigManager
	kv            domain.KeyValueStore
}

// NewShowConfig creates a new ShowConfig use case.
// kv may be nil; stored keys are listed only when it implements domain.KeyLister.
func NewShowConfig(configManager domain.ConfigManager, kv domain.KeyValueStore) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		kv:            kv,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	if in.Effective == nil {
		return nil, fmt.Errorf("%w: no effective configuration", domain.ErrConfigInvalid)
	}
	out := &ShowConfigOutput{
		Config: in.Effective,
		Path:   uc.configManager.Path(),
		Found:  uc.configManager.Exists(),
	}
	if lister, ok := uc.kv.(domain.KeyLister); ok {
		keys, err := lister.Keys()
		if err != nil {
			return nil, fmt.Errorf("%w: list keys: %w", domain.ErrStorageRead, err)
		}
		out.StoredKeys = append([]string{}, keys...)
	}
	return out, nil
}
