package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setAnalyticsDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setAnalyticsDefaults 统计相关默认值，配置缺省时仍可运行
func setAnalyticsDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("analytics.retention_days", 90)
	viper.SetDefault("analytics.default_query_days", 7)
	viper.SetDefault("analytics.max_query_days", 90)
	viper.SetDefault("analytics.timestamp_skew_hours", 24)
	viper.SetDefault("analytics.rate_limit_window_seconds", 60)
	viper.SetDefault("analytics.rate_limit_max_requests", 60)
	viper.SetDefault("analytics.hot_period_days", 7)
	viper.SetDefault("analytics.hot_count", 10)
	viper.SetDefault("analytics.hot_output_path", ".cache/hot-games.json")
	viper.SetDefault("analytics.hot_cron_spec", "@daily")
	viper.SetDefault("analytics.weights.pv", 0.30)
	viper.SetDefault("analytics.weights.card_click", 0.25)
	viper.SetDefault("analytics.weights.game_start", 0.30)
	viper.SetDefault("analytics.weights.time_spent", 0.15)
}
