package instance

import "os"

// GetID returns the running instance identifier or a default value.
func GetID() string {
	if id := os.Getenv("NEXLYN_INSTANCE_ID"); id != "" {
		return id
	}
	return "api-0"
}
