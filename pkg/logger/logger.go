package logger

import "go.uber.org/zap"

// New builds the application logger: human-readable output in development,
// JSON in any other environment.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
