package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string   `envconfig:"PORT" default:"3000"`
	Env           string   `envconfig:"GOENV" default:"development"`
	MigrationsDir string   `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	UploadsDir    string   `envconfig:"UPLOADS_DIR" default:"uploads"`
	UploadsBucket string   `envconfig:"UPLOADS_BUCKET"`
	CorsOrigins   []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads configuration from the environment. A local .env file is picked
// up when present so development doesn't need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
