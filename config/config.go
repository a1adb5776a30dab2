package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port      string
	StaticDir string
	UploadMax string

	DBDriver string // sqlite|postgres|mysql
	DBPath   string
	DBDSN    string

	SessionCookie string
	SessionTTL    time.Duration
	SessionSweep  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOBucket     string
	MinIOUseSSL     bool
	MinIOPublicBase string

	AdminUsername string
	AdminPassword string

	SoilSeedFile string
	CropSeedFile string

	LogLevel      string
	LogFormat     string
	AuthRateLimit float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("UPLOAD_MAX", "10M")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "cropcare.db")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("SESSION_COOKIE", "cropcare_session")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_SWEEP", "@every 15m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "cropcare")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_PUBLIC_BASE", "")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("SOIL_SEED_FILE", "")
	v.SetDefault("CROP_SEED_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("AUTH_RATE_LIMIT", 5.0)
}

// Load reads .env, an optional config.yaml from the working directory and the
// process environment, in increasing order of precedence.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[cfg] no .env file loaded: %v", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("[cfg] error reading config file: %v", err)
		}
	}
	return v
}

// FromViper builds an AppConfig from an already populated viper instance.
func FromViper(v *viper.Viper) AppConfig {
	ttl, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil || ttl <= 0 {
		log.Warnf("[cfg] invalid SESSION_TTL %q, using 24h", v.GetString("SESSION_TTL"))
		ttl = 24 * time.Hour
	}
	cfg := AppConfig{
		Port:      v.GetString("PORT"),
		StaticDir: v.GetString("STATIC_DIR"),
		UploadMax: v.GetString("UPLOAD_MAX"),

		DBDriver: strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:   v.GetString("DB_PATH"),
		DBDSN:    v.GetString("DB_DSN"),

		SessionCookie: v.GetString("SESSION_COOKIE"),
		SessionTTL:    ttl,
		SessionSweep:  v.GetString("SESSION_SWEEP"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		MinIOEndpoint:   v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:  v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:     v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:     v.GetBool("MINIO_USE_SSL"),
		MinIOPublicBase: v.GetString("MINIO_PUBLIC_BASE"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		SoilSeedFile: v.GetString("SOIL_SEED_FILE"),
		CropSeedFile: v.GetString("CROP_SEED_FILE"),

		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		AuthRateLimit: v.GetFloat64("AUTH_RATE_LIMIT"),
	}
	if cfg.AdminPassword == "admin123" {
		log.Warn("[cfg] using default ADMIN_PASSWORD; set it in your environment")
	}
	return cfg
}
