package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/lingobot.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	BotToken  string          `mapstructure:"bot_token" validate:"required"`
	DB        DBConfig        `mapstructure:"db" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Review    ReviewConfig    `mapstructure:"review"`
	Translate TranslateConfig `mapstructure:"translate"`
	Admins    []int64         `mapstructure:"admins"`
	Env       string          `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=1"`
	HTTPAddr string        `mapstructure:"http_addr" validate:"required"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver" validate:"oneof=memory redis"`
	Redis  RedisConfig   `mapstructure:"redis"`
	TTL    time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

type ReviewConfig struct {
	DecayDays             int `mapstructure:"decay_days" validate:"min=1"`
	MaxDistractorAttempts int `mapstructure:"max_distractor_attempts" validate:"min=1,max=100"`
}

type TranslateConfig struct {
	Email   string        `mapstructure:"email" validate:"omitempty,email"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":            "BOT_TOKEN",
	"env":                  "ENV",
	"app.http_addr":        "HTTP_ADDR",
	"db.conn.host":         "DB_HOST",
	"db.conn.port":         "DB_PORT",
	"db.conn.user":         "DB_USER",
	"db.conn.password":     "DB_PASSWORD",
	"db.conn.name":         "DB_NAME",
	"db.conn.ssl":          "DB_SSL",
	"cache.driver":         "CACHE_DRIVER",
	"cache.redis.addr":     "REDIS_ADDR",
	"cache.redis.password": "REDIS_PASSWORD",
	"translate.email":      "TRANSLATE_EMAIL",
	"admins":               "ADMINS",
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("app.http_addr", ":8080")
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("review.decay_days", 10)
	v.SetDefault("review.max_distractor_attempts", 20)
	v.SetDefault("translate.timeout", 10*time.Second)
}

func load(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DSN builds a lib/pq connection string.
func (c DBConn) DSN() string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		c.Host, c.Port, c.Name, c.User, c.Password, c.SSL)
}

func (c Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admins {
		if id == userID {
			return true
		}
	}
	return false
}
