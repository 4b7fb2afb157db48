package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Sync     SyncConfig     `mapstructure:"sync"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Node     int64          `mapstructure:"node"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StorageConfig selects the local key-value backend.
type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	Table       string `mapstructure:"table"`
	DataKey     string `mapstructure:"data_key"`
	QueueKey    string `mapstructure:"queue_key"`
	LastSyncKey string `mapstructure:"last_sync_key"`
	QuotaBytes  int    `mapstructure:"quota_bytes"`
	Debug       bool   `mapstructure:"debug"`
}

type SheetsConfig struct {
	Enabled         bool             `mapstructure:"enabled"`
	SpreadsheetID   string           `mapstructure:"spreadsheet_id"`
	CredentialsFile string           `mapstructure:"credentials_file"`
	Names           SheetNamesConfig `mapstructure:"names"`
}

type SheetNamesConfig struct {
	Clients   string `mapstructure:"clients"`
	Materials string `mapstructure:"materials"`
	Labor     string `mapstructure:"labor"`
	Products  string `mapstructure:"products"`
	Quotes    string `mapstructure:"quotes"`
}

type SyncConfig struct {
	Interval        time.Duration `mapstructure:"interval"`
	MaxRetries      int           `mapstructure:"max_retries"`
	BaseDelay       time.Duration `mapstructure:"base_delay"`
	MaxDelay        time.Duration `mapstructure:"max_delay"`
	ProbeURL        string        `mapstructure:"probe_url"`
	ProbeInterval   time.Duration `mapstructure:"probe_interval"`
	TeardownTimeout time.Duration `mapstructure:"teardown_timeout"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("node", 1)

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.dsn", "cotizador.db")
	v.SetDefault("storage.table", "cotizador_state")
	v.SetDefault("storage.data_key", "wmc_data")
	v.SetDefault("storage.queue_key", "wmc-sync-queue")
	v.SetDefault("storage.last_sync_key", "wmc-last-sync-time")
	v.SetDefault("storage.quota_bytes", 5*1024*1024)
	v.SetDefault("storage.debug", false)

	v.SetDefault("sheets.enabled", false)
	v.SetDefault("sheets.credentials_file", "credentials.json")
	v.SetDefault("sheets.names.clients", "Clientes")
	v.SetDefault("sheets.names.materials", "Materiales")
	v.SetDefault("sheets.names.labor", "ManoDeObra")
	v.SetDefault("sheets.names.products", "Productos")
	v.SetDefault("sheets.names.quotes", "Cotizaciones")

	v.SetDefault("sync.interval", 5*time.Minute)
	v.SetDefault("sync.max_retries", 5)
	v.SetDefault("sync.base_delay", time.Second)
	v.SetDefault("sync.max_delay", 32*time.Second)
	v.SetDefault("sync.probe_url", "https://sheets.googleapis.com/")
	v.SetDefault("sync.probe_interval", 30*time.Second)
	v.SetDefault("sync.teardown_timeout", 10*time.Second)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
}

// LoadConfig loads config.yaml when present and applies COTIZADOR_* environment
// overrides, e.g. COTIZADOR_STORAGE_DRIVER=postgres.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.cotizador/")

	v.SetEnvPrefix("COTIZADOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverDynamoDB:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverPostgres && c.Storage.DSN == "" {
		return errors.New("storage.dsn is required for postgres")
	}
	if c.Sheets.Enabled && c.Sheets.SpreadsheetID == "" {
		return errors.New("sheets.spreadsheet_id is required when sheets are enabled")
	}
	if c.Sync.MaxRetries < 0 {
		return errors.New("sync.max_retries cannot be negative")
	}
	return nil
}
