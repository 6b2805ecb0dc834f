package config

// Start pages the TUI can open on.
const (
	PageHome    = "home"
	PageContext = "context"
	PageStore   = "store"
)

// Config holds presentation and logging settings. Container state is never
// configured: every container starts from count 0 and the light theme.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=json console"`
}

// MetricsConfig configures the Prometheus counters printed by replay --metrics.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" validate:"required,metricname"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	StartPage    string `yaml:"start_page" validate:"required,page"`
	AltScreen    bool   `yaml:"alt_screen"`
	Unicode      bool   `yaml:"unicode"`
	HistoryLimit int    `yaml:"history_limit" validate:"gte=1,lte=500"`
}

// Script is a named sequence of operations for the replay command.
type Script struct {
	Name       string   `yaml:"name" validate:"required"`
	Variant    string   `yaml:"variant" validate:"omitempty,oneof=both context store"`
	Operations []string `yaml:"operations" validate:"required,min=1,dive,required,operation"`
	Expect     *Expect  `yaml:"expect"`
}

// Expect is the final state a script must reach. Unset fields are not checked.
type Expect struct {
	Count *int   `yaml:"count"`
	Theme string `yaml:"theme" validate:"omitempty,theme"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			StartPage:    PageHome,
			AltScreen:    true,
			Unicode:      true,
			HistoryLimit: 20,
		},
		Metrics: MetricsConfig{
			Namespace: "statedemo",
		},
	}
}
