package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	walletEnvKey       = "MONITORED_WALLET"
	tonAPIURLEnvKey    = "TON_API_URL"
	pollIntervalEnvKey = "POLL_INTERVAL"
	minAmountEnvKey    = "MIN_AMOUNT_TON"
	userKeyEnvKey      = "DEFAULT_USER_KEY"
)

const (
	defaultTonAPIURL    = "https://toncenter.com/api/v2"
	defaultPollInterval = 10 * time.Second
	defaultMinAmountTon = "0.01"
	defaultUserKey      = "0000000"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	MonitoredWallet string
	TonAPIURL       string
	PollInterval    time.Duration
	MinAmountTon    decimal.Decimal
	DefaultUserKey  string
}

func NewApp() (App, error) {
	// optional .env file, real environment wins
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	wallet, ok := os.LookupEnv(walletEnvKey)
	if !ok || wallet == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, walletEnvKey)
	}

	tonAPIURL := defaultTonAPIURL
	if v, ok := os.LookupEnv(tonAPIURLEnvKey); ok {
		tonAPIURL = v
	}

	pollInterval := defaultPollInterval
	if v, ok := os.LookupEnv(pollIntervalEnvKey); ok {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("invalid %s value %q", pollIntervalEnvKey, v)
		}
		pollInterval = time.Duration(seconds) * time.Second
	}

	minAmountStr := defaultMinAmountTon
	if v, ok := os.LookupEnv(minAmountEnvKey); ok {
		minAmountStr = v
	}
	minAmount, err := decimal.NewFromString(minAmountStr)
	if err != nil {
		return App{}, fmt.Errorf("invalid %s value %q: %w", minAmountEnvKey, minAmountStr, err)
	}

	userKey := defaultUserKey
	if v, ok := os.LookupEnv(userKeyEnvKey); ok && v != "" {
		userKey = v
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		MonitoredWallet: wallet,
		TonAPIURL:       tonAPIURL,
		PollInterval:    pollInterval,
		MinAmountTon:    minAmount,
		DefaultUserKey:  userKey,
	}, nil
}
