package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	"github.com/Astemirdum/shareit/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GATEWAY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// ShareitServer is the upstream the gateway forwards to.
type ShareitServer struct {
	Host    string        `yaml:"host" envconfig:"SHAREIT_SERVER_HOST" default:"localhost"`
	Port    string        `yaml:"port" envconfig:"SHAREIT_SERVER_PORT" default:"9090"`
	Timeout time.Duration `yaml:"timeout" envconfig:"SHAREIT_SERVER_TIMEOUT" default:"30s"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	ShareitServer  ShareitServer          `yaml:"shareitServer"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Log            logger.Log             `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment, then overlays the optional CONFIG_FILE yaml.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if err := loadFile(os.Getenv("CONFIG_FILE"), &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func loadFile(path string, config *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
