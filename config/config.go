package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Admin  AdminConfig
	Upload UploadConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AdminConfig holds the HTTP basic auth credentials for the admin API.
type AdminConfig struct {
	Username string
	Password string
}

// UploadConfig controls where uploaded files (doctor photos, documents)
// are stored and under which URL prefix they are served.
type UploadConfig struct {
	Dir     string
	BaseURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/images"
	}
	uploadBaseURL := viper.GetString("UPLOAD_BASE_URL")
	if uploadBaseURL == "" {
		uploadBaseURL = "/images"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			Username: adminUsername,
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Upload: UploadConfig{
			Dir:     uploadDir,
			BaseURL: uploadBaseURL,
		},
	}

	return config, nil
}
