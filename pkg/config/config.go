// Package config provides configuration loading for the dashboard server.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	HTTP      HTTPData      `json:"http"`
	Dashboard DashboardData `json:"dashboard,omitempty"`
}

// HTTPData holds the listener configuration for the dashboard server
type HTTPData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
}

// DashboardData holds presentation defaults pushed to the UI layer
type DashboardData struct {
	Title       string  `json:"title,omitempty"`
	DefaultMode string  `json:"default_mode,omitempty"`
	TrendSpan   float64 `json:"trend_span,omitempty"`
}
