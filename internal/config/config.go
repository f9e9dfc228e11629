package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type VideoConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	Issuer     string        `mapstructure:"issuer"`
	TTL        time.Duration `mapstructure:"ttl"`
}

type Config struct {
	Mode       string `mapstructure:"mode"`
	Port       int    `mapstructure:"port"`
	StaticPath string `mapstructure:"static_path"`
	LogLevel   string `mapstructure:"log_level"`
	Secret     string `mapstructure:"secret"`

	ReadLimit  int64         `mapstructure:"read_limit"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	PongWait   time.Duration `mapstructure:"pong_wait"`
	WriteWait  time.Duration `mapstructure:"write_wait"`
	SendBuffer int           `mapstructure:"send_buffer"`

	MaxOccupancy   int           `mapstructure:"max_occupancy"`
	DemoRoomID     string        `mapstructure:"demo_room_id"`
	CreateLimit    int           `mapstructure:"create_limit"`
	CreateInterval time.Duration `mapstructure:"create_interval"`

	Video VideoConfig `mapstructure:"video"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 8081)
	v.SetDefault("static_path", "./web")
	v.SetDefault("log_level", "info")
	v.SetDefault("secret", "change-me-cookie-secret")
	v.SetDefault("read_limit", 4096)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("pong_wait", "60s")
	v.SetDefault("write_wait", "5s")
	v.SetDefault("send_buffer", 256)
	v.SetDefault("max_occupancy", 50)
	v.SetDefault("demo_room_id", "")
	v.SetDefault("create_limit", 10)
	v.SetDefault("create_interval", "1m")
	v.SetDefault("video.signing_key", "change-me-video-key")
	v.SetDefault("video.issuer", "plaza")
	v.SetDefault("video.ttl", "1h")
}

// Load reads config/config.<CONFIG_ENV>.yaml when present and lets PLAZA_*
// environment variables override any key (video.ttl -> PLAZA_VIDEO_TTL).
func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)
	v.SetEnvPrefix("PLAZA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.BindEnv("demo_room_id", "PLAZA_DEMO_ROOM_ID", "DEMO_ROOM_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Int("port", cfg.Port).
		Int("max_occupancy", cfg.MaxOccupancy).
		Msg("config ready")
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	if c.MaxOccupancy <= 0 {
		errs = append(errs, fmt.Errorf("max_occupancy must be positive: %d", c.MaxOccupancy))
	}
	if c.SendBuffer <= 0 {
		errs = append(errs, fmt.Errorf("send_buffer must be positive: %d", c.SendBuffer))
	}
	if c.PingPeriod <= 0 || c.PongWait <= c.PingPeriod {
		errs = append(errs, fmt.Errorf("pong_wait (%s) must exceed ping_period (%s)", c.PongWait, c.PingPeriod))
	}
	if c.CreateLimit <= 0 || c.CreateInterval <= 0 {
		errs = append(errs, errors.New("create_limit and create_interval must be positive"))
	}
	if c.Video.SigningKey == "" {
		errs = append(errs, errors.New("video.signing_key is required"))
	}
	return errors.Join(errs...)
}
