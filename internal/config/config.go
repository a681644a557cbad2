package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MJE43/gamehub-go/internal/audio"
)

// Config is the process configuration, read from GAMEHUB_* variables.
type Config struct {
	Addr            string        `env:"ADDR"              envDefault:"127.0.0.1:8088"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"   envDefault:"60s"`
	AudioEnabled    bool          `env:"AUDIO_ENABLED"     envDefault:"true"`
	AudioVolume     int           `env:"AUDIO_VOLUME"      envDefault:"70"`
	AudioSampleRate int           `env:"AUDIO_SAMPLE_RATE" envDefault:"44100"`
	// Seed fixes every session's randomness so a run can be replayed.
	Seed           string   `env:"SEED"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Prefix is prepended to every variable name.
const Prefix = "GAMEHUB_"

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that tags cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%sADDR must not be empty", Prefix)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%sREQUEST_TIMEOUT must be positive, got %s", Prefix, c.RequestTimeout)
	}
	if c.AudioVolume < 0 || c.AudioVolume > 100 {
		return fmt.Errorf("%sAUDIO_VOLUME must be in [0, 100], got %d", Prefix, c.AudioVolume)
	}
	if c.AudioSampleRate <= 0 {
		return fmt.Errorf("%sAUDIO_SAMPLE_RATE must be positive, got %d", Prefix, c.AudioSampleRate)
	}
	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, strings.TrimSuffix(o, "/"))
		}
	}
	c.AllowedOrigins = origins
	return nil
}

// Audio returns the tone service settings.
func (c Config) Audio() audio.Config {
	return audio.Config{
		Enabled:    c.AudioEnabled,
		Volume:     c.AudioVolume,
		SampleRate: c.AudioSampleRate,
	}
}
