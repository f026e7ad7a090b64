package config

import "fmt"

// GetServerConfig builds the merged configuration and applies the
// server-specific validation rules on top of it.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
