package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		HTTP      HTTPYAML      `yaml:"http,omitempty"`
		Dashboard DashboardYAML `yaml:"dashboard,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		HTTP: HTTPData{
			ListenAddr: yamlConfig.HTTP.ListenAddr,
			Port:       yamlConfig.HTTP.Port,
		},
		Dashboard: DashboardData{
			Title:       yamlConfig.Dashboard.Title,
			DefaultMode: yamlConfig.Dashboard.DefaultMode,
			TrendSpan:   yamlConfig.Dashboard.TrendSpan,
		},
	}

	return config, nil
}

// HTTPYAML is the YAML representation of the listener configuration
type HTTPYAML struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
	Port       int    `yaml:"port,omitempty"`
}

// DashboardYAML is the YAML representation of the dashboard defaults
type DashboardYAML struct {
	Title       string  `yaml:"title,omitempty"`
	DefaultMode string  `yaml:"default_mode,omitempty"`
	TrendSpan   float64 `yaml:"trend_span,omitempty"`
}
