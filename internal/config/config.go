package config

import (
	"os"
)

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	VertexModel string
	Port        string
}

func New() *Config {
	return &Config{
		ProjectID:   os.Getenv("PROJECTID"),
		Region:      os.Getenv("REGION"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		VertexModel: os.Getenv("VERTEXMODEL"),
		Port:        portOrDefault(os.Getenv("PORT")),
	}
}

func portOrDefault(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}
