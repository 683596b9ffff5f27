// internal/app/bootstrap/logger.go
package bootstrap

import "go.uber.org/zap"

// NewLogger builds the process logger: development encoding for local
// runs, production JSON otherwise.
func NewLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
