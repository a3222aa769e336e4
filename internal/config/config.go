package config

import "os"

type Config struct {
	Port          string
	JWTSecret     string
	ExportPath    string
	StaffEmail    string
	StaffPassword string
	StaffName     string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8081"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		ExportPath:    getEnv("EXPORT_PATH", "StoreOrders.txt"),
		StaffEmail:    getEnv("STAFF_EMAIL", "owner@beanery.local"),
		StaffPassword: getEnv("STAFF_PASSWORD", "changeme"),
		StaffName:     getEnv("STAFF_NAME", "Store Owner"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
