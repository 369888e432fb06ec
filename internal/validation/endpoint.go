package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// EndpointValidator checks the API base URL before a client is built.
// The API key travels in the query string, so plain http is only accepted
// for loopback hosts unless AllowInsecure is set.
type EndpointValidator struct {
	AllowInsecure bool
	MaxLength     int
}

func NewEndpointValidator() *EndpointValidator {
	return &EndpointValidator{MaxLength: 2048}
}

// ValidateAndNormalize returns endpoint with a trailing slash.
func (v *EndpointValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", fmt.Errorf("endpoint cannot be empty")
	}
	if v.MaxLength > 0 && len(input) > v.MaxLength {
		return "", fmt.Errorf("endpoint too long (max %d characters)", v.MaxLength)
	}
	if strings.ContainsAny(input, "<>\"'` ") {
		return "", fmt.Errorf("endpoint contains invalid characters")
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint format: %w", err)
	}

	switch parsed.Scheme {
	case "https":
	case "http":
		if !v.AllowInsecure && !isLoopback(parsed.Hostname()) {
			return "", fmt.Errorf("endpoint must use https for non-local hosts")
		}
	default:
		return "", fmt.Errorf("endpoint must use http or https protocol")
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("endpoint must have a valid hostname")
	}
	if parsed.User != nil {
		return "", fmt.Errorf("endpoint must not carry credentials")
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("endpoint must not have a query or fragment")
	}
	if strings.Contains(parsed.Path, "..") {
		return "", fmt.Errorf("directory traversal patterns not allowed in endpoint path")
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	return parsed.String(), nil
}

func isLoopback(hostname string) bool {
	if hostname == "localhost" || strings.HasSuffix(hostname, ".localhost") {
		return true
	}
	ip := net.ParseIP(hostname)
	return ip != nil && ip.IsLoopback()
}
