package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/semafind/geodist/distance"
	"gopkg.in/yaml.v3"
)

// ---------------------------

const GEODIST_CONFIG = "GEODIST_CONFIG"

type ConfigMap struct {
	// Global debug flag
	Debug bool `yaml:"debug"`
	// Pretty log output
	PrettyLogOutput bool `yaml:"prettyLogOutput"`
	// Radius of the reference sphere in kilometres
	EarthRadiusKm float64 `yaml:"earthRadiusKm"`
}

func DefaultConfig() ConfigMap {
	return ConfigMap{
		EarthRadiusKm: distance.EarthRadiusKm,
	}
}

// LoadConfig reads the yaml file at path, if path is empty the file path is
// taken from GEODIST_CONFIG and if that is also unset only the defaults and
// environment are used. Environment variables with the GEODIST_ prefix
// override the file.
func LoadConfig(path string) (ConfigMap, error) {
	configMap := DefaultConfig()
	if path == "" {
		path = os.Getenv(GEODIST_CONFIG)
	}
	// ---------------------------
	if path != "" {
		cFile, err := os.Open(path)
		if err != nil {
			return configMap, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		defer cFile.Close()
		decoder := yaml.NewDecoder(cFile)
		// An empty file decodes to io.EOF, leave the defaults in place
		if err := decoder.Decode(&configMap); err != nil && !errors.Is(err, io.EOF) {
			return configMap, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	// ---------------------------
	// Then parse environment variables
	opts := env.Options{Prefix: "GEODIST_", UseFieldNameByDefault: true}
	if err := env.ParseWithOptions(&configMap, opts); err != nil {
		return configMap, fmt.Errorf("failed to parse env: %w", err)
	}
	// ---------------------------
	if _, err := distance.NewSphere(configMap.EarthRadiusKm); err != nil {
		return configMap, fmt.Errorf("invalid earthRadiusKm: %w", err)
	}
	return configMap, nil
}

// Sphere returns the reference sphere described by the configuration.
func (c ConfigMap) Sphere() (distance.Sphere, error) {
	s, err := distance.NewSphere(c.EarthRadiusKm)
	if err != nil {
		return s, err
	}
	log.Debug().Float64("radiusKm", s.RadiusKm).Msg("Reference sphere")
	return s, nil
}

// SetupLogging configures the global logger to write to w. The level is info
// unless the debug flag is set.
func SetupLogging(cfg ConfigMap, w io.Writer) {
	if cfg.PrettyLogOutput {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	} else {
		log.Logger = log.Output(w)
	}
	// ---------------------------
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Interface("config", cfg).Msg("Geodist config")
	}
}
