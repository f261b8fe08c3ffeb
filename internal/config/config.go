// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	defaultClientName    = "Jellyshell"
	defaultClientVersion = "0.0.1"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerURL     string `validate:"required,url"`
	ClientName    string `validate:"required"`
	ClientVersion string `validate:"required"`
	DeviceName    string `validate:"required"`
	DeviceID      string `validate:"required"`
	DBPath        string `validate:"required"`
	ListenAddr    string `validate:"required,hostname_port"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	LogFormat     string `validate:"oneof=text json"`
}

var validate = validator.New()

// Load reads configuration from environment variables and returns a validated Config.
// A .env file in the working directory is loaded first; real environment
// variables take precedence over it.
//
// JELLYSHELL_SERVER_URL is required. Optional variables with defaults:
// JELLYSHELL_CLIENT_NAME (Jellyshell), JELLYSHELL_CLIENT_VERSION (0.0.1),
// JELLYSHELL_DEVICE_NAME (runtime.GOOS), JELLYSHELL_DEVICE_ID (UUIDv5 of the
// hostname), JELLYSHELL_DB_PATH (jellyshell.db), JELLYSHELL_LISTEN_ADDR
// (127.0.0.1:8096), JELLYSHELL_LOG_LEVEL (info), JELLYSHELL_LOG_FORMAT (text).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerURL:     strings.TrimRight(os.Getenv("JELLYSHELL_SERVER_URL"), "/"),
		ClientName:    getEnv("JELLYSHELL_CLIENT_NAME", defaultClientName),
		ClientVersion: getEnv("JELLYSHELL_CLIENT_VERSION", defaultClientVersion),
		DeviceName:    getEnv("JELLYSHELL_DEVICE_NAME", runtime.GOOS),
		DeviceID:      getEnv("JELLYSHELL_DEVICE_ID", defaultDeviceID()),
		DBPath:        getEnv("JELLYSHELL_DB_PATH", "jellyshell.db"),
		ListenAddr:    getEnv("JELLYSHELL_LISTEN_ADDR", "127.0.0.1:8096"),
		LogLevel:      strings.ToLower(getEnv("JELLYSHELL_LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("JELLYSHELL_LOG_FORMAT", "text")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, describe(err)
	}

	return cfg, nil
}

// envKeys maps Config field names to the variable that sets them.
var envKeys = map[string]string{
	"ServerURL":     "JELLYSHELL_SERVER_URL",
	"ClientName":    "JELLYSHELL_CLIENT_NAME",
	"ClientVersion": "JELLYSHELL_CLIENT_VERSION",
	"DeviceName":    "JELLYSHELL_DEVICE_NAME",
	"DeviceID":      "JELLYSHELL_DEVICE_ID",
	"DBPath":        "JELLYSHELL_DB_PATH",
	"ListenAddr":    "JELLYSHELL_LISTEN_ADDR",
	"LogLevel":      "JELLYSHELL_LOG_LEVEL",
	"LogFormat":     "JELLYSHELL_LOG_FORMAT",
}

// describe turns validator errors into a message naming the offending variables.
func describe(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		key := envKeys[fe.Field()]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", key))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s has invalid value %q", key, fe.Value()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// defaultDeviceID derives a stable identifier from the hostname so repeated
// runs on the same machine present the same device to the server.
func defaultDeviceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("jellyshell:"+host)).String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
