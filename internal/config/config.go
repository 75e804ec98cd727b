package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	Journey JourneyConfig `yaml:"journey" mapstructure:"journey"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the pass-output database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// SourcesConfig locates the four source exports. Each source reads
// from the shared workbook sheet unless a CSV path overrides it.
type SourcesConfig struct {
	Workbook string       `yaml:"workbook" mapstructure:"workbook"`
	Sheets   SheetNames   `yaml:"sheets" mapstructure:"sheets"`
	CSV      CSVOverrides `yaml:"csv" mapstructure:"csv"`
}

// SheetNames maps each source to its sheet in the workbook.
type SheetNames struct {
	Ledger       string `yaml:"ledger" mapstructure:"ledger"`
	LeadForms    string `yaml:"lead_forms" mapstructure:"lead_forms"`
	CRM          string `yaml:"crm" mapstructure:"crm"`
	Reservations string `yaml:"reservations" mapstructure:"reservations"`
}

// CSVOverrides points individual sources at CSV files instead of
// workbook sheets. Legacy dumps are typically windows-1251.
type CSVOverrides struct {
	Ledger       string `yaml:"ledger" mapstructure:"ledger"`
	LeadForms    string `yaml:"lead_forms" mapstructure:"lead_forms"`
	CRM          string `yaml:"crm" mapstructure:"crm"`
	Reservations string `yaml:"reservations" mapstructure:"reservations"`
	Encoding     string `yaml:"encoding" mapstructure:"encoding"`
	Comma        string `yaml:"comma" mapstructure:"comma"`
}

// JourneyConfig configures the journey builder.
type JourneyConfig struct {
	IncludeReservations bool `yaml:"include_reservations" mapstructure:"include_reservations"`
}

// ReportConfig configures the XLSX report export.
type ReportConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the read-only HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GUESTLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "guestlink.db")
	v.SetDefault("sources.sheets.ledger", "Guests")
	v.SetDefault("sources.sheets.lead_forms", "Site Requests")
	v.SetDefault("sources.sheets.crm", "CRM")
	v.SetDefault("sources.sheets.reservations", "Reserves")
	v.SetDefault("sources.csv.encoding", "windows-1251")
	v.SetDefault("sources.csv.comma", ";")
	v.SetDefault("journey.include_reservations", false)
	v.SetDefault("report.path", "guestlink-report.xlsx")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
