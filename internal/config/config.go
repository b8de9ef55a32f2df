package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Feeds       Feeds       `mapstructure:",squash"`
	Revenue     Revenue     `mapstructure:",squash"`
	Coalescer   Coalescer   `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Feeds struct {
	MetricsURL       string `mapstructure:"feed_metrics_url"`
	RevenueURL       string `mapstructure:"feed_revenue_url"`
	ActivityURL      string `mapstructure:"feed_activity_url"`
	TimeoutSeconds   int    `mapstructure:"feed_timeout_seconds"`
	SimulatorEnabled bool   `mapstructure:"feed_simulator_enabled"`
}

type Revenue struct {
	// Multiplier fica vazio quando REVENUE_MULTIPLIER não está definido.
	// A ausência precisa sobreviver até o transform, que a converte em
	// ValidationError, nunca em um amount não numérico.
	Multiplier        string  `mapstructure:"revenue_multiplier"`
	DefaultMultiplier float64 `mapstructure:"revenue_default_multiplier"`
}

type Coalescer struct {
	TTLSeconds int `mapstructure:"coalescer_ttl_seconds"`
}

type AutoRefresh struct {
	Enabled         bool `mapstructure:"auto_refresh_enabled"`
	IntervalSeconds int  `mapstructure:"auto_refresh_interval_seconds"`
}

type Dashboard struct {
	DefaultRangeDays int `mapstructure:"dashboard_default_range_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Por padrão os feeds apontam para o simulador embutido
	viper.SetDefault("FEED_METRICS_URL", "http://localhost:8000/sim/metrics")
	viper.SetDefault("FEED_REVENUE_URL", "http://localhost:8000/sim/revenue")
	viper.SetDefault("FEED_ACTIVITY_URL", "http://localhost:8000/sim/activity")
	viper.SetDefault("FEED_TIMEOUT_SECONDS", 10)
	viper.SetDefault("FEED_SIMULATOR_ENABLED", true)

	viper.SetDefault("REVENUE_DEFAULT_MULTIPLIER", 1.0)

	viper.SetDefault("COALESCER_TTL_SECONDS", 30)

	viper.SetDefault("AUTO_REFRESH_ENABLED", false)
	viper.SetDefault("AUTO_REFRESH_INTERVAL_SECONDS", 30)

	viper.SetDefault("DASHBOARD_DEFAULT_RANGE_DAYS", 7)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// RevenueMultiplier resolve o multiplicador de receita para um ciclo.
// Sem configuração customizada, vale o multiplicador padrão. Com
// useCustomConfig ativo, retorna o valor configurado em REVENUE_MULTIPLIER,
// ou nil quando ausente ou não finito, para que o Transform Layer falhe com
// ValidationError em vez de propagar um valor corrompido.
func (c *Config) RevenueMultiplier(useCustomConfig bool) *float64 {
	if !useCustomConfig {
		multiplier := c.Revenue.DefaultMultiplier
		return &multiplier
	}

	if c.Revenue.Multiplier == "" {
		return nil
	}

	multiplier, err := strconv.ParseFloat(c.Revenue.Multiplier, 64)
	if err != nil {
		logrus.WithField("revenue_multiplier", c.Revenue.Multiplier).
			Warn("REVENUE_MULTIPLIER configurado com valor inválido")
		return nil
	}

	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return nil
	}

	return &multiplier
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
