package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Mongo struct {
		URI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
		Database   string `env:"MONGO_DATABASE" envDefault:"userdb"`
		Collection string `env:"MONGO_COLLECTION" envDefault:"users"`
	}

	// Expected value of the client-identity header; every request must
	// present it, so the service refuses to start without one.
	UserAgent string `env:"USER_AGENT,required"`
}

func Load() *Config {
	// Missing .env is fine, variables may be set directly
	// in the environment in production.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
