package debug

import (
	"fmt"
	"log"
	"time"
)

// Output prints debug output if debugging is enabled.
func Output(enabled bool, format string, args ...interface{}) {
	if enabled {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		log.Printf("[%s] %s", timestamp, message)
	}
}

// Timing measures and logs execution time if debugging is enabled.
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(enabled, "Starting: %s", operation)

	return func() {
		Output(enabled, "Completed: %s (took %v)", operation, time.Since(start))
	}
}
