package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"soulbuddy/internal/platform/markup"
)

// Config holds all configuration for the service
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Data    DataConfig    `yaml:"data"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Port                   int      `yaml:"port"`
	ReadTimeoutSeconds     int      `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int      `yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
	AllowedOrigins         []string `yaml:"allowed_origins"`
}

// GeminiConfig: sin APIKey el servicio usa el generador estático (modo dev).
type GeminiConfig struct {
	APIKey          string   `yaml:"api_key"`
	Model           string   `yaml:"model"`
	Temperature     *float32 `yaml:"temperature"` // nil => default del modelo
	MaxOutputTokens int32    `yaml:"max_output_tokens"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
}

// StorageConfig: DSN vacío => repositorio en memoria.
type StorageConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

// CacheConfig: RedisURL vacío => cache en memoria.
type CacheConfig struct {
	RedisURL   string `yaml:"redis_url"`
	Prefix     string `yaml:"prefix"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type DataConfig struct {
	SignsCSV string `yaml:"signs_csv"` // vacío => dataset embebido
}

type RenderConfig struct {
	HTMLPolicy string `yaml:"html_policy"` // ugc | none
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func (c ServerConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c GeminiConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c GeminiConfig) Enabled() bool { return strings.TrimSpace(c.APIKey) != "" }

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Default devuelve la configuración de desarrollo.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:                   5000,
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    90,
			ShutdownTimeoutSeconds: 15,
			AllowedOrigins:         []string{"*"},
		},
		Gemini: GeminiConfig{
			Model:          "gemini-1.5-flash",
			TimeoutSeconds: 60,
		},
		Storage: StorageConfig{Migrate: true},
		Cache: CacheConfig{
			Prefix:     "soulbuddy:",
			TTLMinutes: 24 * 60,
		},
		Render: RenderConfig{HTMLPolicy: string(markup.PolicyUGC)},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "soulbuddy",
		},
	}
}

// Load lee un YAML sobre los defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnv carga .env (si existe), el YAML opcional y aplica overrides de entorno.
func LoadFromEnv(path string) (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg *Config
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		d := Default()
		cfg = &d
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var errs []error

	setInt := func(name string, dst *int) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = n
		}
	}
	setString := func(name string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
		}
	}

	setInt("PORT", &cfg.Server.Port)
	setInt("READ_TIMEOUT_SECONDS", &cfg.Server.ReadTimeoutSeconds)
	setInt("WRITE_TIMEOUT_SECONDS", &cfg.Server.WriteTimeoutSeconds)
	setInt("SHUTDOWN_TIMEOUT_SECONDS", &cfg.Server.ShutdownTimeoutSeconds)
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	setString("GEMINI_API_KEY", &cfg.Gemini.APIKey)
	setString("GEMINI_MODEL", &cfg.Gemini.Model)
	setInt("GEMINI_TIMEOUT_SECONDS", &cfg.Gemini.TimeoutSeconds)
	if v := strings.TrimSpace(os.Getenv("GEMINI_TEMPERATURE")); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("GEMINI_TEMPERATURE: %w", err))
		} else {
			temp := float32(f)
			cfg.Gemini.Temperature = &temp
		}
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_MAX_OUTPUT_TOKENS")); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS: %w", err))
		} else {
			cfg.Gemini.MaxOutputTokens = int32(n)
		}
	}

	setString("DB_DSN", &cfg.Storage.DSN)
	if v := strings.TrimSpace(os.Getenv("DB_MIGRATE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("DB_MIGRATE: %w", err))
		} else {
			cfg.Storage.Migrate = b
		}
	}

	setString("REDIS_URL", &cfg.Cache.RedisURL)
	setString("CACHE_PREFIX", &cfg.Cache.Prefix)
	setInt("CACHE_TTL_MINUTES", &cfg.Cache.TTLMinutes)

	setString("SIGNS_CSV", &cfg.Data.SignsCSV)
	setString("HTML_POLICY", &cfg.Render.HTMLPolicy)

	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FORMAT", &cfg.Log.Format)
	setString("APP_NAME", &cfg.Log.App)

	return errors.Join(errs...)
}

// Validate reporta todos los valores inválidos juntos.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if t := c.Gemini.Temperature; t != nil && (*t < 0 || *t > 2) {
		errs = append(errs, fmt.Errorf("gemini.temperature must be within [0,2]: %v", *t))
	}
	if c.Gemini.MaxOutputTokens < 0 {
		errs = append(errs, errors.New("gemini.max_output_tokens must not be negative"))
	}
	if c.Cache.TTLMinutes < 0 {
		errs = append(errs, errors.New("cache.ttl_minutes must not be negative"))
	}
	if _, err := markup.ParsePolicy(c.Render.HTMLPolicy); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
