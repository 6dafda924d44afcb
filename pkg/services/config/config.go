package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds runtime configuration for the report service. Values come
// from an optional yaml file with FMS_-prefixed env overrides on top.
type Settings struct {
	ServerHost      string
	ServerPort      string
	DbPath          string
	DefaultCurrency string
	HistoryLimit    int
}

func (s Settings) Addr() string {
	return net.JoinHostPort(s.ServerHost, s.ServerPort)
}

// Load reads configuration from cfgPath when given, otherwise from config.yaml
// in the working directory. A missing file is not an error, defaults apply.
func Load(cfgPath string) (Settings, error) {
	v := viper.New()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "fms-reports.db")
	v.SetDefault("reports.default_currency", "USD")
	v.SetDefault("reports.history_limit", 50)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Settings{
		ServerHost:      v.GetString("server.host"),
		ServerPort:      v.GetString("server.port"),
		DbPath:          v.GetString("database.path"),
		DefaultCurrency: v.GetString("reports.default_currency"),
		HistoryLimit:    v.GetInt("reports.history_limit"),
	}, nil
}
