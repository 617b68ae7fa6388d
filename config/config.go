package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ytscribe/internal/appdirs"
)

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type AppConfig struct {
	Proxy string `toml:"proxy"`
}

type YoutubeConfig struct {
	// Data API v3 key used by the search client. Left empty here, the
	// YOUTUBE_API_KEY environment variable is consulted at load time.
	APIKey string `toml:"api_key"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	App     AppConfig     `toml:"app"`
	Youtube YoutubeConfig `toml:"youtube"`
}

var Conf = defaultConfig()

var resolveConfigPath = func() (string, error) {
	paths, err := appdirs.Resolve()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8888,
		},
	}
}

// LoadOrCreateConfig loads config.toml into Conf, writing the default file
// first when none exists. Returns whether the file was created.
func LoadOrCreateConfig() (bool, error) {
	configPath, err := resolveConfigPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		Conf = defaultConfig()
		applyEnvOverrides()
		if err := SaveConfig(); err != nil {
			return false, err
		}
		return true, nil
	}

	var loaded Config
	if _, err := toml.DecodeFile(configPath, &loaded); err != nil {
		return false, err
	}
	Conf = loaded
	applyEnvOverrides()
	return false, nil
}

// SaveConfig writes Conf to config.toml, creating parent directories as
// needed.
func SaveConfig() error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(Conf)
}

func applyEnvOverrides() {
	if Conf.Youtube.APIKey == "" {
		Conf.Youtube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
}
