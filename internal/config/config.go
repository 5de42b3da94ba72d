package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file. A missing file is
// not an error — the solver runs on defaults — but an unreadable or
// malformed one is.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./gunlogs")

	viper.SetDefault("screen.width", 1920)
	viper.SetDefault("screen.height", 1080)

	// Pixel scales at the reference distance; see ballistics.Calibration.
	viper.SetDefault("calibration.pixelsPerKm", 100.0)
	viper.SetDefault("calibration.pixelsPer100m", 10.0)
	viper.SetDefault("calibration.referenceKm", 10.0)

	viper.SetDefault("catalog.source", "json")
	viper.SetDefault("catalog.path", "./ship_data.json")

	viper.SetDefault("api.url", "http://localhost:5000")
	viper.SetDefault("api.key", "")

	viper.SetDefault("smoothing.enabled", false)
	viper.SetDefault("smoothing.window", 5)

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "gunnery")
	viper.SetDefault("db.sqlitePath", "./gunnery_catalog.db")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "gunnery-metrics")
	viper.SetDefault("influx.bucket", "solver_performance")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "gunnery")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.exportInterval", "60s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	viper.SetConfigName("gunnery.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// OTelConfig holds OpenTelemetry settings.
type OTelConfig struct {
	Enabled        bool
	ServiceName    string
	BatchTimeout   time.Duration
	ExportInterval time.Duration
	Endpoint       string
	Insecure       bool
}

// GetOTelConfig returns the OTel configuration.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:        viper.GetBool("otel.enabled"),
		ServiceName:    viper.GetString("otel.serviceName"),
		BatchTimeout:   viper.GetDuration("otel.batchTimeout"),
		ExportInterval: viper.GetDuration("otel.exportInterval"),
		Endpoint:       viper.GetString("otel.endpoint"),
		Insecure:       viper.GetBool("otel.insecure"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
