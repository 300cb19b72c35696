package config

type (
	RequestLine struct {
		// MaxLength limits the request line, CRLF excluded. Longer lines are rejected
		// before any parsing happens.
		MaxLength int `mapstructure:"max_length"`
	}

	URI struct {
		// DefaultPort is used whenever the request target carries no explicit port.
		DefaultPort uint16 `mapstructure:"default_port"`
		// Strict additionally requires the whole request target to conform to the URI
		// grammar. Otherwise query and fragment are taken as-is up to their delimiters.
		Strict bool `mapstructure:"strict" test:"nullable"`
	}
)

// Config holds limitations and defaults of the request-line parser.
//
// Modify the defaults returned by Default() instead of initializing the config
// manually: zero values are not meaningful defaults.
type Config struct {
	RequestLine RequestLine `mapstructure:"request_line"`
	URI         URI         `mapstructure:"uri"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		RequestLine: RequestLine{
			// most web-entities limit the request line to 4-8kb, so this is pretty tolerant
			MaxLength: 16 * 1024,
		},
		URI: URI{
			DefaultPort: 80,
			Strict:      false,
		},
	}
}
