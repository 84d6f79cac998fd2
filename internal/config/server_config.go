package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EchoServer configures the HTTP listener.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	GracefulShutdownTimeout        time.Duration
}

// AuthServer configures API authentication. An empty APIKey disables
// authentication (development only).
type AuthServer struct {
	APIKey string
}

// LoggerServer configures logging.
type LoggerServer struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// Metastore configures the badger-backed metadata store.
type Metastore struct {
	Path     string
	InMemory bool
}

// Server is the aggregated service configuration, resolved from ENV.
type Server struct {
	Echo      EchoServer
	Auth      AuthServer
	Logger    LoggerServer
	Metastore Metastore
}

// DefaultServiceConfigFromEnv returns the server config as configured through
// the environment, prefix "KEYRING_" (e.g. KEYRING_ECHO_LISTEN_ADDRESS).
func DefaultServiceConfigFromEnv() Server {
	v := viper.New()
	v.SetEnvPrefix("KEYRING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("echo.listen_address", ":8080")
	v.SetDefault("echo.hide_internal_server_error_details", true)
	v.SetDefault("echo.graceful_shutdown_timeout", 10*time.Second)
	v.SetDefault("auth.api_key", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", false)
	v.SetDefault("metastore.path", "/app/data/keyring")
	v.SetDefault("metastore.in_memory", false)

	level, err := zerolog.ParseLevel(v.GetString("logger.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return Server{
		Echo: EchoServer{
			ListenAddress:                  v.GetString("echo.listen_address"),
			HideInternalServerErrorDetails: v.GetBool("echo.hide_internal_server_error_details"),
			GracefulShutdownTimeout:        v.GetDuration("echo.graceful_shutdown_timeout"),
		},
		Auth: AuthServer{
			APIKey: v.GetString("auth.api_key"),
		},
		Logger: LoggerServer{
			Level:              level,
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		Metastore: Metastore{
			Path:     v.GetString("metastore.path"),
			InMemory: v.GetBool("metastore.in_memory"),
		},
	}
}
