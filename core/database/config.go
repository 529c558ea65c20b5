package database

import coreconfig "github.com/hksports/sportsbuddy/core/config"

// Config holds database connection settings.
type Config struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int
}

// FromCore converts the loaded application config section into a database Config.
func FromCore(cfg coreconfig.DatabaseConfig) Config {
	return Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		User:           cfg.User,
		Password:       cfg.Password,
		Name:           cfg.Name,
		SSLMode:        cfg.SSLMode,
		MaxConnections: cfg.MaxConnections,
	}
}
