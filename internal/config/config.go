package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	AccountsReport AccountsReport `mapstructure:",squash"`
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
	SSLMode  string `mapstructure:"database_sslmode"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type AccountsReport struct {
	CronSchedule string `mapstructure:"accounts_report_cron"`
	Enabled      bool   `mapstructure:"accounts_report_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MIGRATE", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("ACCOUNTS_REPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	v.SetDefault("ACCOUNTS_REPORT_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(v)
}

// Load decodifica a configuração a partir de uma instância do viper já preenchida
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(config.Database)
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

func buildDSN(db Database) (string, error) {
	switch strings.ToLower(db.Driver) {
	case DriverPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL)
		if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
			sep := "?"
			if strings.Contains(db.URL, "?") {
				sep = "&"
			}
			dsn = fmt.Sprintf("%s%ssslmode=%s", dsn, sep, db.SSLMode)
		}
		return dsn, nil
	case DriverSQLite:
		// Para SQLite a URL é o caminho do arquivo (ou ":memory:")
		return db.URL, nil
	default:
		return "", fmt.Errorf("config: driver de banco de dados não suportado: %q", db.Driver)
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
