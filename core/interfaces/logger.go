package interfaces

// Logger defines the interface for logging throughout the application.
// Scrapers write their entire diagnostic stream through it, keeping stdout
// free for the result JSON.
//
// Example usage:
//
//	logger.Info("Searching reddit", map[string]interface{}{
//		"bike": "Honda CB350",
//	})
//
//	logger.Warn("Could not fetch comments", map[string]interface{}{
//		"post_id": "1abc2d",
//		"error":   err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warnings cover per-item failures the run recovers from.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Errors cover per-entity failures the run recovers from.
	Error(msg string, fields map[string]interface{})
}
