// Package config loads the mindmap configuration file.
//
// The file is TOML, read from $XDG_CONFIG_HOME/mindmap/config.toml (or
// ~/.config/mindmap/config.toml) unless a path is given. Every key is
// optional; a missing file yields [Default].
//
//	language = "pt"
//
//	[storage]
//	backend  = "sqlite"
//	key      = "mindmap-data"
//	compress = true
//
//	[storage.sqlite]
//	path = "/var/lib/mindmap/maps.db"
//
//	[export]
//	scale      = 3
//	background = "#ffffff"
//	engine     = "native"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/export"
	"github.com/matzehuels/mindmap/pkg/i18n"
	"github.com/matzehuels/mindmap/pkg/storage"
)

// Config is the full configuration.
type Config struct {
	Language string  `toml:"language"`
	Storage  Storage `toml:"storage"`
	Export   Export  `toml:"export"`
}

// Storage configures persistence.
type Storage struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	Key      string `toml:"key"`
	Compress bool   `toml:"compress"`

	SQLite SQLite `toml:"sqlite"`
	Redis  Redis  `toml:"redis"`
	Mongo  Mongo  `toml:"mongo"`
}

type SQLite struct {
	Path string `toml:"path"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Export configures file export.
type Export struct {
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background"`
	Engine     string  `toml:"engine"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Language: string(i18n.Default),
		Storage: Storage{
			Backend: storage.BackendFile,
			Key:     storage.DefaultKey,
		},
		Export: Export{
			Scale:      export.DefaultScale,
			Background: export.DefaultBackground,
			Engine:     string(export.EngineNative),
		},
	}
}

// DefaultPath returns the config file location, following XDG conventions.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mindmap", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mindmap", "config.toml")
	}
	return filepath.Join(home, ".config", "mindmap", "config.toml")
}

// Load reads the config at path, or DefaultPath when path is empty. A
// missing file at the default location is not an error; a missing file that
// was asked for explicitly is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := i18n.Parse(c.Language); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLanguage, err, "language")
	}
	if c.Storage.Backend != "" && !slices.Contains(storage.Backends, c.Storage.Backend) {
		return errors.New(errors.ErrCodeInvalidBackend, "unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := export.ParseEngine(c.Export.Engine); err != nil {
		return err
	}
	if c.Export.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "export.scale must be positive")
	}
	return nil
}

// LanguageTag returns the configured language.
func (c Config) LanguageTag() i18n.Language {
	l, err := i18n.Parse(c.Language)
	if err != nil {
		return i18n.Default
	}
	return l
}

// StorageOptions converts the storage section for storage.Open.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.Storage.Backend,
		Dir:        c.Storage.Dir,
		SQLitePath: c.Storage.SQLite.Path,
		Redis: storage.RedisOptions{
			Addr:     c.Storage.Redis.Addr,
			Password: c.Storage.Redis.Password,
			DB:       c.Storage.Redis.DB,
		},
		Mongo: storage.MongoOptions{
			URI:        c.Storage.Mongo.URI,
			Database:   c.Storage.Mongo.Database,
			Collection: c.Storage.Mongo.Collection,
		},
	}
}

// SnapshotOptions returns the key and compression settings.
func (c Config) SnapshotOptions() []storage.SnapshotOption {
	return []storage.SnapshotOption{
		storage.WithKey(c.Storage.Key),
		storage.WithCompression(c.Storage.Compress),
	}
}

// ExportOptions converts the export section.
func (c Config) ExportOptions() []export.Option {
	engine, _ := export.ParseEngine(c.Export.Engine)
	return []export.Option{
		export.WithScale(c.Export.Scale),
		export.WithBackground(c.Export.Background),
		export.WithEngine(engine),
	}
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
