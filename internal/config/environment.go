package config

// Environment is the deployment mode of the process. It is resolved once
// from configuration and passed explicitly to the logger and the HTTP
// error handler.
type Environment string

const (
	// Development enables colored console logs and verbose error bodies.
	Development Environment = "development"
	// Production enables JSON "combined" access logs and terse error bodies.
	Production Environment = "production"
)

// ParseEnvironment maps raw text to an Environment. Only the exact literal
// "development" selects [Development]; anything else, including an empty
// string or a different case, selects [Production].
func ParseEnvironment(s string) Environment {
	if s == string(Development) {
		return Development
	}
	return Production
}

// UnmarshalText implements encoding.TextUnmarshaler so that caarlos0/env and
// encoding/json decode NODE_ENV through [ParseEnvironment].
func (e *Environment) UnmarshalText(text []byte) error {
	*e = ParseEnvironment(string(text))
	return nil
}

// IsDevelopment reports whether e is [Development].
func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) String() string {
	return string(e)
}
