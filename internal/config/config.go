package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input struct {
		// Strict makes any per-record schema problem fatal.
		Strict bool `yaml:"strict"`
	} `yaml:"input"`
	Summary struct {
		Locale string `yaml:"locale"` // thousands grouping of tree counts
	} `yaml:"summary"`
	Storage struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"storage"`
	S3 struct {
		Region       string `yaml:"region"`
		Endpoint     string `yaml:"endpoint"`
		AccessKey    string `yaml:"access_key"`
		SecretKey    string `yaml:"secret_key"`
		UsePathStyle bool   `yaml:"use_path_style"`
	} `yaml:"s3"`
	Log struct {
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Summary.Locale = "it"
	cfg.Storage.DBPath = "caseview.db"
	cfg.S3.Region = "us-east-1"
	cfg.S3.UsePathStyle = true
	return &cfg
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, err
			}
		}
	}

	// 3. Override with Environment Variables if present
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"CASEVIEW_LOCALE":        &cfg.Summary.Locale,
		"CASEVIEW_DB":            &cfg.Storage.DBPath,
		"CASEVIEW_S3_REGION":     &cfg.S3.Region,
		"CASEVIEW_S3_ENDPOINT":   &cfg.S3.Endpoint,
		"CASEVIEW_S3_ACCESS_KEY": &cfg.S3.AccessKey,
		"CASEVIEW_S3_SECRET_KEY": &cfg.S3.SecretKey,
	}
	for name, dst := range strs {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"CASEVIEW_DEBUG":  &cfg.Log.Debug,
		"CASEVIEW_STRICT": &cfg.Input.Strict,
	}
	for name, dst := range bools {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(name + ": " + err.Error())
		}
		*dst = b
	}
	return nil
}
