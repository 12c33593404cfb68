package config

import (
	"time"
)

type DB struct {
	Url         string `envconfig:"URL"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}
type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"aq:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// QuoteCache controls how long market quotes are reused before the
// providers are asked again.
type QuoteCache struct {
	TTL    time.Duration `envconfig:"TTL" default:"5m"`
	Prefix string        `envconfig:"PREFIX" default:"quote:"`
}

type TwelveData struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.twelvedata.com"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

type Finnhub struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://finnhub.io/api/v1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type AlphaVantage struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://www.alphavantage.co/query"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"20s"`
}

type MarketData struct {
	TwelveData   *TwelveData   `envconfig:"TWELVEDATA"`
	Finnhub      *Finnhub      `envconfig:"FINNHUB"`
	AlphaVantage *AlphaVantage `envconfig:"ALPHAVANTAGE"`
	Concurrency  int           `envconfig:"CONCURRENCY" default:"4"`
}

type Jobs struct {
	SeriesDays   int `envconfig:"SERIES_DAYS" default:"365"`
	BackfillDays int `envconfig:"BACKFILL_DAYS" default:"90"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[alphaquantum]"`
	File       string `envconfig:"FILE" default:""`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"MAX_BACKUPS" default:"5"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env        string      `envconfig:"APP_ENV" default:"development"`
	Server     *Server     `envconfig:"SERVER"`
	Log        *Log        `envconfig:"LOG"`
	DB         *DB         `envconfig:"DATABASE"`
	Auth       *Auth       `envconfig:"AUTH"`
	Redis      *Redis      `envconfig:"REDIS"`
	RateLimit  *RateLimit  `envconfig:"RATE_LIMIT"`
	QuoteCache *QuoteCache `envconfig:"QUOTE_CACHE"`
	MarketData *MarketData `envconfig:"MARKET_DATA"`
	Jobs       *Jobs       `envconfig:"JOBS"`
}
