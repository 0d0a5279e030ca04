package backend

import (
	"os"
	"strconv"
	"time"
)

// Config locates the upstream Tiffin Sathi REST backend.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// LoadConfig reads the backend location from the environment. The base URL
// defaults to the local development backend; the token is optional for
// endpoints that allow anonymous reads.
func LoadConfig() Config {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("BACKEND_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return Config{
		BaseURL:  baseURL,
		APIToken: os.Getenv("BACKEND_API_TOKEN"),
		Timeout:  timeout,
	}
}
