package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port   int    `json:"port"`
	DbPath string `json:"dbPath"`
}

// LoadConfig reads config.json (path overridable via PAPERTRADE_CONFIG),
// falling back to defaults when the file is absent. PAPERTRADE_PORT and
// PAPERTRADE_DB override either source.
func LoadConfig() (*Config, error) {
	config := Config{
		Port:   8000,
		DbPath: "stocks.db",
	}

	configFile := "config.json"
	if v := os.Getenv("PAPERTRADE_CONFIG"); v != "" {
		configFile = v
	}

	f, err := os.ReadFile(configFile)
	if err == nil {
		if err := json.Unmarshal(f, &config); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	if v := os.Getenv("PAPERTRADE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAPERTRADE_PORT %q: %w", v, err)
		}
		config.Port = port
	}
	if v := os.Getenv("PAPERTRADE_DB"); v != "" {
		config.DbPath = v
	}

	return &config, nil
}
