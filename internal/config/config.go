package config

import (
	"time"

	"github.com/alecthomas/kong"
)

type Config struct {
	Port          int           `help:"HTTP listen port." env:"ADMINPANEL_PORT" default:"8090"`
	Store         string        `help:"Collection backend." enum:"memory,sqlite" env:"ADMINPANEL_STORE" default:"memory"`
	DatabaseDSN   string        `name:"database-dsn" help:"SQLite DSN used by the sqlite store." env:"ADMINPANEL_DATABASE_DSN" default:"file:adminpanel?mode=memory&cache=shared"`
	SessionSecret string        `help:"Key signing the local storage cookie." env:"ADMINPANEL_SESSION_SECRET" default:"change-me-in-production-32bytes!"`
	SessionMaxAge int           `help:"Local storage cookie lifetime in seconds." env:"ADMINPANEL_SESSION_MAX_AGE" default:"2592000"`
	SecureCookie  bool          `help:"Only send the storage cookie over HTTPS." env:"ADMINPANEL_SECURE_COOKIE"`
	ChartCacheTTL time.Duration `name:"chart-cache-ttl" help:"How long rendered charts are reused." env:"ADMINPANEL_CHART_CACHE_TTL" default:"5m"`
	ChartAssets   string        `help:"Host serving the echarts scripts; empty uses the go-echarts default." env:"ADMINPANEL_CHART_ASSETS"`
	LogLevel      string        `help:"Log level." enum:"debug,info,warn,error" env:"ADMINPANEL_LOG_LEVEL" default:"info"`
	LogJSON       bool          `name:"log-json" help:"Emit logs as JSON." env:"ADMINPANEL_LOG_JSON"`
	ShutdownGrace time.Duration `help:"How long to wait for requests on shutdown." env:"ADMINPANEL_SHUTDOWN_GRACE" default:"10s"`
}

// Load parses args on top of the environment and the defaults above.
func Load(args []string, options ...kong.Option) (*Config, error) {
	cfg := &Config{}
	options = append([]kong.Option{
		kong.Name("adminpanel"),
		kong.Description("Sidebar admin panel serving mock users, logs, tasks and charts."),
	}, options...)
	parser, err := kong.New(cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
