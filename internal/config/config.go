package config

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type Config struct {
	GraphAPIKey     string        `env:"THE_GRAPH_API_KEY,required"`
	GraphGatewayURL string        `env:"GRAPH_GATEWAY_URL,default=https://gateway.thegraph.com"`
	NetworksFile    string        `env:"NETWORKS_FILE"`
	SubgraphTimeout time.Duration `env:"SUBGRAPH_TIMEOUT,default=30s"`
	SentryURL       string        `env:"SENTRY_URL"`
	DiscordURL      string        `env:"DISCORD_URL"`
	CacheMaxAge     time.Duration `env:"CACHE_MAX_AGE,default=1h"`
	CacheSWR        time.Duration `env:"CACHE_SWR,default=59s"`
	AdminAPIKey     string        `env:"ADMIN_API_KEY"`
	DB              DBConfig
}

type DBConfig struct {
	Driver     string `env:"DB_DRIVER,default=sqlite"`
	Path       string `env:"DB_PATH,default=."`
	User       string `env:"DB_USER"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME"`
	Host       string `env:"DB_HOST"`
	ReaderHost string `env:"DB_READER_HOST"`
}

func New(ctx context.Context, envpath string) (*Config, error) {
	if envpath != "" {
		log.Default().Println("loading env from file: ", envpath)
		err := godotenv.Load(envpath)
		if err != nil {
			return nil, err
		}
	}

	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	err := envconfig.ProcessWith(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	if cfg.DB.ReaderHost == "" {
		cfg.DB.ReaderHost = cfg.DB.Host
	}

	return cfg, nil
}
