package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultDirPath = "files"
	defaultWorkers = 5
)

type Config struct {
	TelegramCfg TelegramCfg    `yaml:"telegram"`
	MTProto     MTProtoCfg     `yaml:"mtproto"`
	DB          DBCfg          `yaml:"db"`
	FileService FileServiceCfg `yaml:"file_service"`
}

type TelegramCfg struct {
	Token string `yaml:"token" env:"TELEGRAM_TOKEN"`
}

// MTProtoCfg enables direct downloads when AppID is set. Without it files
// larger than the Bot API limit cannot be archived.
type MTProtoCfg struct {
	AppID    int    `yaml:"app_id" env:"MTPROTO_APP_ID"`
	AppHash  string `yaml:"app_hash" env:"MTPROTO_APP_HASH"`
	PartSize int    `yaml:"part_size" env:"MTPROTO_PART_SIZE"`
}

func (c MTProtoCfg) Enabled() bool {
	return c.AppID != 0 && c.AppHash != ""
}

type DBCfg struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

type FileServiceCfg struct {
	DirPath      string `yaml:"dir_path" env:"FILES_DIR"`
	Workers      int    `yaml:"workers" env:"FILES_WORKERS"`
	ArchiveMedia bool   `yaml:"archive_media" env:"FILES_ARCHIVE_MEDIA"`
	// Retention is how long archive folders are kept. Zero keeps them forever.
	Retention time.Duration `yaml:"retention" env:"FILES_RETENTION"`
}

// Load reads the YAML file at path, if any, and then applies .env and
// environment overrides on top of it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errors.Wrapf(err, "read %s", path)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if cfg.TelegramCfg.Token == "" {
		return nil, errors.New("telegram token is not set")
	}
	if cfg.FileService.DirPath == "" {
		cfg.FileService.DirPath = defaultDirPath
	}
	if cfg.FileService.Workers <= 0 {
		cfg.FileService.Workers = defaultWorkers
	}
	return cfg, nil
}
