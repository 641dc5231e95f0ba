package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Cache    CacheConfig    `yaml:"cache"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Export   ExportConfig   `yaml:"export"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type PostgresConfig struct {
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	DbName  string `yaml:"db_name"`
	User    string `yaml:"user"`
	Pwd     string `yaml:"password"`
	SslMode string `yaml:"sslmode"`
}

type CacheConfig struct {
	Size int           `yaml:"size" env-default:"1024"`
	TTL  time.Duration `yaml:"ttl" env-default:"10m"`
}

type KafkaConfig struct {
	BrokerList     []string `yaml:"broker_list"`
	MenuEventTopic string   `yaml:"menu_event_topic"`
}

type ExportConfig struct {
	MediaPath    string        `yaml:"media_path" env-default:"media"`
	PollInterval time.Duration `yaml:"poll_interval" env-default:"5s"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
