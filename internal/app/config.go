package app

import (
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/utils"
)

type Config struct {
	Port         string
	ServiceName  string
	Environment  string
	Version      string
	JWTSecretKey string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:         utils.GetEnv("PORT", "8000", log),
		ServiceName:  utils.GetEnv("SERVICE_NAME", "navi-backend", log),
		Environment:  utils.GetEnv("ENVIRONMENT", "development", log),
		Version:      utils.GetEnv("SERVICE_VERSION", "dev", log),
		JWTSecretKey: utils.GetEnv("JWT_SECRET_KEY", "", log),
	}
}
