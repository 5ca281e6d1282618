// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/codec"
	"github.com/runoshun/tasklist/internal/infra/config"
	"github.com/runoshun/tasklist/internal/infra/filestore"
	"github.com/runoshun/tasklist/internal/infra/idgen"
	"github.com/runoshun/tasklist/internal/infra/jsonstore"
	"github.com/runoshun/tasklist/internal/infra/logging"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Config holds the resolved application paths and storage settings.
type Config struct {
	ConfigPath string   // Path to config.toml (may not exist)
	DataDir    string   // Directory holding storage and logs
	StorePath  string   // Storage file (json backend) or directory (dir backend)
	LogDir     string   // Directory holding tasklist.log
	Backend    string   // Storage backend: "json" or "dir"
	Format     string   // Task list encoding: "json" or "yaml"
	LogLevel   string   // Log level: debug, info, warn, error
	Warnings   []string // Config warnings to surface to the user
}

// newConfig resolves paths from the loaded application config.
func newConfig(configPath, dataDir string, appConfig *domain.Config) Config {
	storePath := appConfig.Storage.Path
	if storePath == "" {
		storePath = domain.StoragePath(dataDir, appConfig.Storage.Backend)
	}
	logDir := appConfig.Log.Dir
	if logDir == "" && dataDir != "" {
		logDir = filepath.Join(dataDir, "logs")
	}
	return Config{
		ConfigPath: configPath,
		DataDir:    dataDir,
		StorePath:  storePath,
		LogDir:     logDir,
		Backend:    appConfig.Storage.Backend,
		Format:     appConfig.Storage.Format,
		LogLevel:   appConfig.Log.Level,
		Warnings:   appConfig.Warnings,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	KV            domain.KeyValueStore
	Codec         domain.TaskCodec
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigManager domain.ConfigManager

	// Pointer fields
	logFile *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container from the config file at configPath.
// An empty configPath means the default location.
func New(configPath string) (*Container, error) {
	loader := config.NewLoader(configPath)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(loader.Path(), appConfig)
}

// NewFromConfig creates a new Container from an already loaded config.
// It is also used to run recovery commands when the config file is invalid.
func NewFromConfig(configPath string, appConfig *domain.Config) (*Container, error) {
	cfg := newConfig(configPath, config.DefaultDataDir(), appConfig)

	kv, err := OpenStore(cfg.Backend, cfg.StorePath)
	if err != nil {
		return nil, err
	}
	taskCodec, err := codec.New(cfg.Format)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogDir, logging.ParseLevel(cfg.LogLevel))

	return &Container{
		KV:            kv,
		Codec:         taskCodec,
		Clock:         domain.RealClock{},
		IDs:           idgen.New(),
		Logger:        logger,
		ConfigManager: config.NewManager(configPath),
		logFile:       logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, kv domain.KeyValueStore, taskCodec domain.TaskCodec, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if taskCodec == nil {
		taskCodec = codec.JSON{}
	}
	return &Container{
		KV:     kv,
		Codec:  taskCodec,
		Clock:  clock,
		IDs:    ids,
		Logger: logger,
		Config: cfg,
	}
}

// OpenStore opens a key-value store for a storage backend.
func OpenStore(backend, path string) (domain.KeyValueStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no storage path for backend %q", domain.ErrConfigInvalid, backend)
	}
	switch backend {
	case domain.BackendJSON:
		return jsonstore.New(path), nil
	case domain.BackendDir:
		return filestore.New(path), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", domain.ErrConfigInvalid, backend)
	}
}

// Effective returns the resolved configuration, with default paths filled in.
func (c *Container) Effective() *domain.Config {
	return &domain.Config{
		Storage: domain.StorageConfig{
			Backend: c.Config.Backend,
			Path:    c.Config.StorePath,
			Format:  c.Config.Format,
		},
		Log: domain.LogConfig{
			Level: c.Config.LogLevel,
			Dir:   c.Config.LogDir,
		},
	}
}

// DefaultStorePath returns the default storage location for a backend
// under the container's data directory.
func (c *Container) DefaultStorePath(backend string) string {
	if c.Config.DataDir == "" {
		return ""
	}
	return domain.StoragePath(c.Config.DataDir, backend)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// TaskStore returns a new, not yet loaded, TaskStore.
func (c *Container) TaskStore() *usecase.TaskStore {
	return usecase.NewTaskStore(c.KV, c.Codec, c.Clock, c.IDs, c.Logger)
}

// Preferences returns a new Preferences.
func (c *Container) Preferences() *usecase.Preferences {
	return usecase.NewPreferences(c.KV, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.KV)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// MigrateStoreUseCase returns a new MigrateStore use case.
func (c *Container) MigrateStoreUseCase(source, dest usecase.StoreEndpoint) *usecase.MigrateStore {
	return usecase.NewMigrateStore(source, dest, c.Clock, c.IDs)
}
