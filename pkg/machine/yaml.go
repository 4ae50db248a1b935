package machine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a MachineConfig from YAML and validates it.
func ParseConfig(r io.Reader) (*MachineConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var config MachineConfig
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode machine config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfig reads and parses a machine config from a YAML file.
func LoadConfig(path string) (*MachineConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open machine config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}
