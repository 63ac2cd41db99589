package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"io/fs"
	"os"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-default:"dev"`
	} `yaml:"app" env-prefix:"APP_"`

	Storage struct {
		Dir      string `yaml:"dir" env:"DIR" env-default:"."`
		FileName string `yaml:"file_name" env:"FILE_NAME" env-default:"historico_imc.json"`
	} `yaml:"storage" env-prefix:"STORAGE_"`

	Display struct {
		Limit int `yaml:"limit" env:"LIMIT" env-default:"5"`
	} `yaml:"display" env-prefix:"DISPLAY_"`

	Share struct {
		Dir     string `yaml:"dir" env:"DIR" env-default:"outbox"`
		Subject string `yaml:"subject" env:"SUBJECT" env-default:"Histórico de IMC"`
	} `yaml:"share" env-prefix:"SHARE_"`

	Beep struct {
		Mute bool `yaml:"mute" env:"MUTE"`
	} `yaml:"beep" env-prefix:"BEEP_"`
}

// Load reads filePath when it exists and the environment otherwise.
func Load(filePath string) (*Config, error) {
	cfg := &Config{}

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
				return nil, configNotLoadedErr("config not loaded: %w", err)
			}
			return cfg, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, configNotLoadedErr("config not loaded: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}
	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
