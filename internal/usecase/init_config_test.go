package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/tasklist/config.toml", out.Path)
		assert.True(t, manager.InitCalled)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.Exist = true

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("force overwrites existing config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.Exist = true

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Force: true})

		require.NoError(t, err)
		assert.True(t, manager.InitForce)
	})
}
