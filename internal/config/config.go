package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries non-secret settings. Provider credentials are resolved
// lazily through the secrets resolver at first use, never here.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger   string         `yaml:"jaeger" env:"JAEGER" env-default:"jaeger"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
	SerpAPI  ProviderConfig `yaml:"serpapi"`
	Amadeus  ProviderConfig `yaml:"amadeus"`
	Exchange ProviderConfig `yaml:"exchangerate"`
	Weather  ProviderConfig `yaml:"weather"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type ProviderConfig struct {
	BaseURL string        `yaml:"base_url" env-default:""`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type GeocoderConfig struct {
	BaseURL string        `yaml:"base_url" env-default:""`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
	Spacing time.Duration `yaml:"spacing" env:"GEOCODER_SPACING" env-default:"1s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
