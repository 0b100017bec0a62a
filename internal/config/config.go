package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Peach        Peach        `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
	Migrations   Migrations   `mapstructure:",squash"`
}

type App struct {
	Debug    bool   `mapstructure:"app_debug"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Peach contém o acesso à API administrativa da Peach AI
type Peach struct {
	URL           string        `mapstructure:"peach_api_url"`
	Token         string        `mapstructure:"peach_api_token"`
	Timeout       time.Duration `mapstructure:"peach_api_timeout"`
	RetryAttempts int           `mapstructure:"peach_api_retry_attempts"`
}

type CampaignSync struct {
	CronSchedule      string `mapstructure:"campaign_sync_cron"`
	Enabled           bool   `mapstructure:"campaign_sync_enabled"`
	HoursBack         int    `mapstructure:"campaign_sync_hours_back"`
	MaxConcurrentJobs int    `mapstructure:"campaign_sync_max_concurrent_jobs"`
	RequestDelayMs    int    `mapstructure:"campaign_sync_request_delay_ms"`
}

type Migrations struct {
	Enabled bool `mapstructure:"migrations_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")

	v.SetDefault("PEACH_API_URL", "https://api.peach.ai")
	v.SetDefault("PEACH_API_TOKEN", "")
	v.SetDefault("PEACH_API_TIMEOUT", "30s")
	v.SetDefault("PEACH_API_RETRY_ATTEMPTS", 3)

	// Defaults para sincronização de campanhas
	v.SetDefault("CAMPAIGN_SYNC_CRON", "0 */6 * * *")    // A cada 6 horas
	v.SetDefault("CAMPAIGN_SYNC_ENABLED", false)         // Apenas disparo manual por padrão
	v.SetDefault("CAMPAIGN_SYNC_HOURS_BACK", 24)         // Últimas 24 horas de métricas
	v.SetDefault("CAMPAIGN_SYNC_MAX_CONCURRENT_JOBS", 5) // 5 campanhas em paralelo
	v.SetDefault("CAMPAIGN_SYNC_REQUEST_DELAY_MS", 100)  // 100ms entre requisições

	v.SetDefault("MIGRATIONS_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debugf("config: using environment only, .env not read by viper: %v", err)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if config.CampaignSync.MaxConcurrentJobs <= 0 {
		config.CampaignSync.MaxConcurrentJobs = 1
	}
	if config.Peach.RetryAttempts < 0 {
		config.Peach.RetryAttempts = 0
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o .env do diretório atual ou de um dos pais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
