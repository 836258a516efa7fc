// Package config assembles runtime configuration from a .env file, an
// optional YAML config file, and ENGIHUB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/logging"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ENGIHUB"

// Config is everything the commands need to build the app.
type Config struct {
	LLM     llm.Config
	Gateway gateway.Config
	Log     logging.Config

	// DBPath is empty unless set in the file or by ENGIHUB_DB.
	DBPath string

	// File is the config file that was read, if any.
	File string
}

// Options tells Load where to look.
type Options struct {
	// ConfigFile is an explicit YAML path. It must exist when set.
	ConfigFile string

	// EnvFile is the dotenv file to load first. Defaults to ".env"; a
	// missing file is not an error.
	EnvFile string
}

// providerKeys lists credential variables in discovery order.
var providerKeys = []struct {
	provider string
	key      string
	env      []string
}{
	{llm.ProviderGemini, "gemini.api_key", []string{"GEMINI_API_KEY", "API_KEY"}},
	{llm.ProviderOpenAI, "openai.api_key", []string{"OPENAI_API_KEY"}},
	{llm.ProviderAnthropic, "anthropic.api_key", []string{"ANTHROPIC_API_KEY"}},
	{llm.ProviderOpenRouter, "openrouter.api_key", []string{"OPENROUTER_API_KEY"}},
}

// Load reads configuration. Environment variables win over the file, and
// variables already set in the process win over the dotenv file.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, pk := range providerKeys {
		if err := v.BindEnv(append([]string{pk.key}, pk.env...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", pk.key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()
	v.SetDefault("llm.retry.max_attempts", llmDefaults.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", llmDefaults.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", llmDefaults.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", llmDefaults.Retry.Multiplier)
	v.SetDefault("llm.timeout", llmDefaults.Timeout)
	v.SetDefault("llm.max_tokens", gateway.DefaultConfig().MaxTokens)

	logDefaults := logging.DefaultConfig()
	v.SetDefault("log.level", logDefaults.Level)
	v.SetDefault("log.disabled", logDefaults.Disabled)
	v.SetDefault("log.max_size_mb", logDefaults.MaxSizeMB)
	v.SetDefault("log.max_backups", logDefaults.MaxBackups)
	v.SetDefault("log.max_age_days", logDefaults.MaxAgeDays)
	v.SetDefault("log.compress", logDefaults.Compress)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		LLM:     llm.DefaultConfig(),
		Gateway: gateway.DefaultConfig(),
		Log:     logging.DefaultConfig(),
		DBPath:  v.GetString("db"),
		File:    v.ConfigFileUsed(),
	}

	cfg.LLM.Gemini.APIKey = v.GetString("gemini.api_key")
	cfg.LLM.OpenAI.APIKey = v.GetString("openai.api_key")
	cfg.LLM.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.LLM.Anthropic.APIKey = v.GetString("anthropic.api_key")
	cfg.LLM.OpenRouter.APIKey = v.GetString("openrouter.api_key")

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = discoverProvider(v)
	}
	if model := v.GetString("llm.model"); model != "" {
		setModel(&cfg.LLM, model)
	}

	cfg.LLM.Retry.MaxAttempts = v.GetInt("llm.retry.max_attempts")
	cfg.LLM.Retry.InitialWait = v.GetDuration("llm.retry.initial_wait")
	cfg.LLM.Retry.MaxWait = v.GetDuration("llm.retry.max_wait")
	cfg.LLM.Retry.Multiplier = v.GetFloat64("llm.retry.multiplier")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")

	cfg.Gateway.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.Gateway.Temperature = v.GetFloat64("llm.temperature")

	cfg.Log.Disabled = v.GetBool("log.disabled")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.File = v.GetString("log.file")
	cfg.Log.MaxSizeMB = v.GetInt("log.max_size_mb")
	cfg.Log.MaxBackups = v.GetInt("log.max_backups")
	cfg.Log.MaxAgeDays = v.GetInt("log.max_age_days")
	cfg.Log.Compress = v.GetBool("log.compress")

	return cfg
}

// discoverProvider picks the first provider with a credential. With none
// set it returns gemini, which then fails validation with a clear message.
func discoverProvider(v *viper.Viper) string {
	for _, pk := range providerKeys {
		if v.GetString(pk.key) != "" {
			return pk.provider
		}
	}
	return llm.ProviderGemini
}

func setModel(c *llm.Config, model string) {
	switch c.Provider {
	case llm.ProviderGemini:
		c.Gemini.Model = model
	case llm.ProviderOpenAI:
		c.OpenAI.Model = model
	case llm.ProviderAnthropic:
		c.Anthropic.Model = model
	case llm.ProviderOpenRouter:
		c.OpenRouter.Model = model
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/engihub, falling back to
// ~/.config/engihub.
func DefaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "engihub"), nil
}
