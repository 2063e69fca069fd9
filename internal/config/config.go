package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Lang       string
	LCMessages string
	LocaleDir  string
	Disabled   bool
	Debug      bool
}

// Load reads the configuration from the environment and normalizes it.
// Nothing is required: every value has a behavior-preserving default, so
// Load cannot fail.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional; the variables usually come straight from the shell.
	}

	cfg := &Config{
		Lang:       os.Getenv("LANG"),
		LCMessages: os.Getenv("LC_MESSAGES"),
		LocaleDir:  os.Getenv("FISHGETTEXT_LOCALEDIR"),
		Disabled:   isTruthy(os.Getenv("FISHGETTEXT_DISABLE")),
		Debug:      isTruthy(os.Getenv("FISHGETTEXT_DEBUG")),
	}
	cfg.normalize()

	return cfg
}

func (c *Config) normalize() {
	c.Lang = strings.TrimSpace(c.Lang)
	c.LCMessages = strings.TrimSpace(c.LCMessages)
	c.LocaleDir = strings.TrimSpace(c.LocaleDir)
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
