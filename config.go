package okta

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvBaseURL is the environment default for the provider base URL, used when
// a message does not carry an explicit address.
const EnvBaseURL = "OKTA_BASE_URL"

// LoadEnv loads .env files for local runs. Missing files are not an error;
// deployed environments inject configuration directly.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ResolveAddress picks the target base URL: the explicit address wins, then
// the OKTA_BASE_URL environment default. A trailing slash is trimmed so path
// joining stays predictable.
func ResolveAddress(address string) (string, error) {
	if v := strings.TrimSpace(address); v != "" {
		return strings.TrimRight(v, "/"), nil
	}

	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		return strings.TrimRight(v, "/"), nil
	}

	return "", ErrMissingAddress
}
