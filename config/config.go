package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBUrl       string
	TokenSecret string
	TokenTTL    time.Duration
	Debug       bool
}

// ParseFlags reads configuration from command-line flags, with defaults taken
// from the environment (a .env file is loaded first, if present).
func ParseFlags() (cfg Config, err error) {
	_ = godotenv.Load()

	var host string
	flag.StringVar(&host, "host", envOr("FORMFEED_HOST", "0.0.0.0"), "listen host name")
	var port uint
	flag.UintVar(&port, "port", envUintOr("FORMFEED_PORT", 8080), "listen port number")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("FORMFEED_DB", "formfeed.sqlite"), "path to SQLite3 DB file")
	flag.StringVar(&cfg.TokenSecret, "token-secret", os.Getenv("FORMFEED_TOKEN_SECRET"), "secret key for signing auth tokens")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", envUintOr("FORMFEED_TOKEN_TTL", 720), "auth token TTL in hours")
	flag.BoolVar(&cfg.Debug, "debug", os.Getenv("FORMFEED_DEBUG") != "", "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Hour

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret (or FORMFEED_TOKEN_SECRET)")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUintOr(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(n)
}
