package appconf

import "strings"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for our Application.
// The settings are read from command-line flags when the Application starts.
type Config struct {
	Port      int
	Env       Environment
	RateLimit int    // requests per second per client, 0 disables limiting
	DBPath    string // SQLite file of the plant table, ":memory:" by default
	Verbose   bool

	// TrustedProxies lists the proxy addresses whose X-Forwarded-For header
	// names the client. Requests from any other peer are keyed by RemoteAddr.
	TrustedProxies []string
}
