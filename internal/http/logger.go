package http

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// leveledLogger adapts metrifox.Logger to retryablehttp.LeveledLogger.
// Debug output is dropped; Client.Do logs requests and responses itself.
type leveledLogger struct {
	logger metrifox.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l leveledLogger) Debug(string, ...interface{}) {}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
