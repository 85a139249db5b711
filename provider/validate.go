package provider

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validateBaseURL checks that a custom base URL is safe to send API keys to.
// Only http(s) URLs pointing at public hosts are accepted.
func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got: %s", u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("base URL must include a hostname")
	}

	if isLocalHost(hostname) {
		return fmt.Errorf("base URL cannot point to localhost")
	}
	if isPrivateHost(hostname) {
		return fmt.Errorf("base URL cannot point to private IP address")
	}

	return nil
}

// isLocalHost checks if a hostname is localhost, loopback or unspecified.
func isLocalHost(hostname string) bool {
	hostname = strings.ToLower(hostname)
	if hostname == "localhost" || strings.HasSuffix(hostname, ".localhost") {
		return true
	}
	ip := net.ParseIP(hostname)
	return ip != nil && (ip.IsLoopback() || ip.IsUnspecified())
}

// isPrivateHost checks if a hostname is a private or link-local IP address.
func isPrivateHost(hostname string) bool {
	ip := net.ParseIP(hostname)
	if ip == nil {
		return false
	}
	return ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast()
}
