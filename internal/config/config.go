package config

import (
	"fmt"

	"github.com/eugenezastrogin/sms-moneybot/pkg/sqlitedb"
	"github.com/spf13/viper"
)

type Config struct {
	API      API             `mapstructure:"api"`
	Database sqlitedb.Config `mapstructure:"database"`
	Telegram Telegram        `mapstructure:"telegram"`
	Wage     Wage            `mapstructure:"wage"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Telegram struct {
	Token    string  `mapstructure:"token"`
	AdminIDs []int64 `mapstructure:"admin_ids"`
}

type Wage struct {
	// CutoffDay anchors pay-period windows; see internal/period.
	CutoffDay int `mapstructure:"cutoff_day"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("wage.cutoff_day", 25)
	viper.SetDefault("database.path", "data.db")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
