package interfaces

// Logger defines the interface for logging throughout the application.
// Backends live in infrastructure/logger (logrus, zap).
//
// Example usage:
//
//	logger.Info("Product search completed", map[string]interface{}{
//		"image_url": imageURL,
//		"results":   len(results),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
