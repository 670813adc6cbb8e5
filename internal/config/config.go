package config

import "github.com/spf13/viper"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	AdminEmail     string
	AdminPassword  string
	SwaggerEnabled bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("SWAGGER_ENABLED", true)
	viper.AutomaticEnv()

	return &Config{
		ServerPort:     viper.GetString("SERVER_PORT"),
		MySQLDSN:       viper.GetString("MYSQL_DSN"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisDB:        viper.GetInt("REDIS_DB"),
		RedisPass:      viper.GetString("REDIS_PASSWORD"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		AdminEmail:     viper.GetString("ADMIN_EMAIL"),
		AdminPassword:  viper.GetString("ADMIN_PASSWORD"),
		SwaggerEnabled: viper.GetBool("SWAGGER_ENABLED"),
	}
}
