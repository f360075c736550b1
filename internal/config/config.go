package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string `envconfig:"PORT"              default:"5000"`
	MongoURI        string `envconfig:"MONGO_URI"         default:"mongodb://localhost:27017"`
	DBName          string `envconfig:"DB_NAME"           default:"payAndBuy"`
	AccessSecret    string `envconfig:"USER_ACCESS_TOKEN" required:"true"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	LogLevel        string `envconfig:"LOG_LEVEL"         default:"info"`
}

// Load reads an optional .env file and then fills the Config from the
// environment. Missing USER_ACCESS_TOKEN is fatal; everything else defaults.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
