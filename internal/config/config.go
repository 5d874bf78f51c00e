package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	SiteURL       string `mapstructure:"SITE_URL"`
	TimeZone      string `mapstructure:"TIME_ZONE"`

	OTPBaseURL      string        `mapstructure:"OTP_BASE_URL"`
	OTPRouter       string        `mapstructure:"OTP_ROUTER"`
	ReachableURL    string        `mapstructure:"REACHABLE_URL"`
	GeocoderURL     string        `mapstructure:"GEOCODER_URL"`
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	PlanThrottle    time.Duration `mapstructure:"PLAN_THROTTLE"`

	SessionCacheSize   int           `mapstructure:"SESSION_CACHE_SIZE"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	PersistPreferences bool          `mapstructure:"PERSIST_PREFERENCES"`
	GeocodeCacheSize   int           `mapstructure:"GEOCODE_CACHE_SIZE"`
	GeocodeCacheTTL    time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	EventsDriver string `mapstructure:"EVENTS_DRIVER"`
	AMQPURL      string `mapstructure:"AMQP_URL"`
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	GinMode      string `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from app.env in path, then lets environment
// variables override it. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SITE_URL", "http://localhost:8080")
	v.SetDefault("TIME_ZONE", "America/New_York")
	v.SetDefault("OTP_BASE_URL", "http://localhost:8080/otp")
	v.SetDefault("OTP_ROUTER", "default")
	v.SetDefault("REACHABLE_URL", "http://localhost:8000/map/reachable")
	v.SetDefault("GEOCODER_URL", "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("PLAN_THROTTLE", 750*time.Millisecond)
	v.SetDefault("SESSION_CACHE_SIZE", 10000)
	v.SetDefault("SESSION_TTL", 12*time.Hour)
	v.SetDefault("PERSIST_PREFERENCES", false)
	v.SetDefault("GEOCODE_CACHE_SIZE", 10000)
	v.SetDefault("GEOCODE_CACHE_TTL", 24*time.Hour)
	v.SetDefault("EVENTS_DRIVER", "none")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "tripplanner")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "tripplanner.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
}

// Location loads TIME_ZONE, the zone trip dates and times are given in.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func (c Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
