package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Model struct {
		Name        string  `yaml:"name"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"model"`
	Request struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
		Retries        int `yaml:"retries"`
	} `yaml:"request"`
	Session struct {
		TTLHours     float64 `yaml:"ttl_hours"`
		SweepMinutes float64 `yaml:"sweep_minutes"`
	} `yaml:"session"`
	Paths struct {
		Templates string `yaml:"templates"`
		Assets    string `yaml:"assets"`
	} `yaml:"paths"`
}

func defaults() *Config {
	config := &Config{}
	config.Model.Name = "gpt-4o-mini"
	config.Model.Temperature = 0.7
	config.Model.TopP = 1
	config.Model.MaxTokens = 1024
	config.Request.TimeoutSeconds = 60
	config.Request.Retries = 1
	config.Session.TTLHours = 24
	config.Session.SweepMinutes = 5
	config.Paths.Templates = "templates"
	config.Paths.Assets = "assets"
	return config
}

func LoadConfig(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
