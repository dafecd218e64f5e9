package shell

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/arvid220u/toyrsa/toyrsa"
)

// Config holds the shell configuration.
type Config struct {
	PrimeMin    int64
	PrimeMax    int64
	Exponent    int64
	MaxAttempts int
	Debug       bool
	Dump        bool
}

// DefaultConfig matches toyrsa.DefaultParams with logging off.
func DefaultConfig() Config {
	p := toyrsa.DefaultParams()
	return Config{
		PrimeMin:    p.PrimeMin,
		PrimeMax:    p.PrimeMax,
		Exponent:    p.Exponent,
		MaxAttempts: p.MaxAttempts,
	}
}

// Params returns the key generation parameters.
func (c *Config) Params() toyrsa.Params {
	return toyrsa.Params{
		PrimeMin:    c.PrimeMin,
		PrimeMax:    c.PrimeMax,
		Exponent:    c.Exponent,
		MaxAttempts: c.MaxAttempts,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return c.Params().Validate()
}

// Loader reads the configuration from the environment, after loading
// envFile into it when that file exists.
type Loader struct {
	envFile string
}

func NewLoader(envFile string) *Loader {
	return &Loader{envFile: envFile}
}

func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		if _, err := os.Stat(l.envFile); err == nil {
			if err := godotenv.Load(l.envFile); err != nil {
				return nil, fmt.Errorf("load %s: %w", l.envFile, err)
			}
		}
	}

	def := DefaultConfig()
	config := &Config{
		Debug: getEnv("TOYRSA_DEBUG", "") != "",
		Dump:  getEnv("TOYRSA_DUMP", "") != "",
	}
	var err error
	if config.PrimeMin, err = getEnvInt64("TOYRSA_PRIME_MIN", def.PrimeMin); err != nil {
		return nil, err
	}
	if config.PrimeMax, err = getEnvInt64("TOYRSA_PRIME_MAX", def.PrimeMax); err != nil {
		return nil, err
	}
	if config.Exponent, err = getEnvInt64("TOYRSA_EXPONENT", def.Exponent); err != nil {
		return nil, err
	}
	attempts, err := getEnvInt64("TOYRSA_MAX_ATTEMPTS", int64(def.MaxAttempts))
	if err != nil {
		return nil, err
	}
	config.MaxAttempts = int(attempts)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
