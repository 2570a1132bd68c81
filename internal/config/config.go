package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string      `yaml:"env" env-default:"local"`
	DSN    string      `yaml:"dsn" env-required:"true"`
	HTTP   HTTPConfig  `yaml:"http"`
	Redis  RedisConf   `yaml:"redis"`
	Feed   FeedConfig  `yaml:"feed"`
	Game   GameConfig  `yaml:"game"`
	Upload UploadConf  `yaml:"upload"`
	Token  TokenConfig `yaml:"token"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// FeedConfig tunes the gallery feed pagination. The first page is larger
// than steady-state pages to optimize first paint.
type FeedConfig struct {
	InitialLimit int           `yaml:"initial_limit" env-default:"16"`
	PageLimit    int           `yaml:"page_limit" env-default:"8"`
	MaxLimit     int           `yaml:"max_limit" env-default:"100"`
	Debounce     time.Duration `yaml:"debounce" env-default:"1s"`
}

type GameConfig struct {
	SessionTTL  time.Duration `yaml:"session_ttl" env-default:"30m"`
	VotePageURL string        `yaml:"vote_page_url"`
}

type UploadConf struct {
	MaxImageBytes int64 `yaml:"max_image_bytes" env-default:"7340032"`
}

type TokenConfig struct {
	Secret     string        `yaml:"secret" env:"TOKEN_SECRET" env-default:"test"`
	AccessTTL  time.Duration `yaml:"access_ttl" env-default:"15m"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env-default:"168h"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
