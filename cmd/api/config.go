package main

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string
	ClinicName  string
	RabbitURL   string // optional, reminders are not queued without it
}

func loadConfig() Config {
	return Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
		ClinicName:  getenv("CLINIC_NAME", "Sunrise Family Clinic"),
		RabbitURL:   os.Getenv("RABBITMQ_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
