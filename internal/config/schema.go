// Package config defines the configuration schema for firegate.
//
// JSON keys use camelCase to match the parameter and credential names the
// tools resolve at runtime (toolType, description, firecrawlApi).
package config

// CredentialConfig holds one remote-API credential record.
type CredentialConfig struct {
	BaseURL string `json:"baseUrl,omitempty"`
	APIKey  string `json:"apiKey"`
}

// ToolInstanceConfig declares one tool instance to register.
// Type selects the operation; Description, when non-empty, replaces the
// built-in description template verbatim.
type ToolInstanceConfig struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ---- Sink configs ----------------------------------------------------------

// SlackSinkConfig configures the Slack notification sink.
type SlackSinkConfig struct {
	Enabled    bool   `json:"enabled"`
	BotToken   string `json:"botToken"`
	Channel    string `json:"channel"`
	ErrorsOnly bool   `json:"errorsOnly"`
}

// TelegramSinkConfig configures the Telegram notification sink.
type TelegramSinkConfig struct {
	Enabled    bool   `json:"enabled"`
	Token      string `json:"token"`
	ChatID     int64  `json:"chatId"`
	ErrorsOnly bool   `json:"errorsOnly"`
}

// SinksConfig groups all notification sink settings.
type SinksConfig struct {
	Slack    SlackSinkConfig    `json:"slack"`
	Telegram TelegramSinkConfig `json:"telegram"`
}

func defaultSinksConfig() SinksConfig {
	return SinksConfig{
		Slack:    SlackSinkConfig{ErrorsOnly: true},
		Telegram: TelegramSinkConfig{ErrorsOnly: true},
	}
}

// ---- Gateway / schedules ---------------------------------------------------

// GatewayConfig holds the observer gateway server settings.
type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func defaultGatewayConfig() GatewayConfig {
	return GatewayConfig{Host: "127.0.0.1", Port: 18890}
}

// ScheduleConfig declares one recurring tool run. Exactly one of Expr (a
// six-field cron expression) or Every (a Go duration string) must be set.
// Preset names the preset file holding the invocation parameters.
type ScheduleConfig struct {
	Name    string `json:"name"`
	Expr    string `json:"expr,omitempty"`
	Every   string `json:"every,omitempty"`
	Preset  string `json:"preset"`
	Enabled bool   `json:"enabled"`
}

// ---- Root config -----------------------------------------------------------

// Config is the root configuration object, loaded from ~/.firegate/config.json.
type Config struct {
	Credentials map[string]CredentialConfig `json:"credentials"`
	Tools       []ToolInstanceConfig        `json:"tools"`
	Sinks       SinksConfig                 `json:"sinks"`
	Gateway     GatewayConfig               `json:"gateway"`
	Schedules   []ScheduleConfig            `json:"schedules"`
}

// DefaultConfig returns a Config populated with all default values: one
// scrape tool, no credentials, sinks disabled.
func DefaultConfig() Config {
	return Config{
		Credentials: map[string]CredentialConfig{},
		Tools:       []ToolInstanceConfig{{Type: "scrape"}},
		Sinks:       defaultSinksConfig(),
		Gateway:     defaultGatewayConfig(),
		Schedules:   []ScheduleConfig{},
	}
}
