package config

import (
	"log"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/iamasit07/power-connect-four/internal/domain"
)

type Config struct {
	EmptySymbol  rune
	Prompt       string
	ShowBoard    bool
	LogMoves     bool
	HistoryLimit int
	Verbose      bool
	// finished sessions older than this are dropped by the cleanup sweep
	SessionTTL time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	emptySymbol := GetEnvAsRune("EMPTY_SYMBOL", domain.EmptySymbol)
	prompt := GetEnv("PROMPT", "> ")

	// Output
	showBoard := GetEnvAsBool("SHOW_BOARD", true)
	historyLimit := GetEnvAsInt("HISTORY_LIMIT", 0)
	if historyLimit < 0 {
		log.Printf("[CONFIG] HISTORY_LIMIT must not be negative, got %d, showing full history", historyLimit)
		historyLimit = 0
	}

	// Logging
	logMoves := GetEnvAsBool("LOG_MOVES", false)
	verbose := GetEnvAsBool("VERBOSE", false)

	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 30)

	AppConfig = &Config{
		EmptySymbol:  emptySymbol,
		Prompt:       prompt,
		ShowBoard:    showBoard,
		LogMoves:     logMoves,
		HistoryLimit: historyLimit,
		Verbose:      verbose,
		SessionTTL:   time.Duration(sessionTTLMin) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsRune reads a single-character value.
func GetEnvAsRune(key string, defaultValue rune) rune {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	r, size := utf8.DecodeRuneInString(valueStr)
	if r == utf8.RuneError || size != len(valueStr) {
		log.Printf("[CONFIG] %s must be a single character, got %q, using default: %q", key, valueStr, defaultValue)
		return defaultValue
	}
	return r
}
