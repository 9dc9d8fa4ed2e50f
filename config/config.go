package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS           = ""              // e.g. "example.com,example2.com"
	MYSQL_DSN             = ""              // MySQL will be used if this is set
	SQLITE_FILE           = "/tmp/swapi.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS          = "0.0.0.0:3000"
	DEBUG_MODE            = true
	JWT_SECRET            = "super-secret" // TODO: refuse to start in production with the default secret
	TOKEN_EXPIRY_HOURS    = 24
	INITIAL_USER_EMAIL    = "" // Created at startup if no users exist yet
	INITIAL_USER_PASSWORD = ""
	SEED_DEMO_DATA        = false // Insert a handful of people/planets into an empty database
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvInt("TOKEN_EXPIRY_HOURS", &TOKEN_EXPIRY_HOURS)
	readEnvString("INITIAL_USER_EMAIL", &INITIAL_USER_EMAIL)
	readEnvString("INITIAL_USER_PASSWORD", &INITIAL_USER_PASSWORD)
	readEnvBool("SEED_DEMO_DATA", &SEED_DEMO_DATA)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
