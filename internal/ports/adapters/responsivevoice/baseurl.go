package responsivevoice

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://texttospeech.responsivevoice.org"
	defaultHost    = "texttospeech.responsivevoice.org"
)

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// ValidateBaseURL checks the TTS endpoint before any request is made.
// Every request carries the API key and the narrated text in its query, so
// the URL must be plain https on a known host: the ResponsiveVoice host
// unless RESPONSIVEVOICE_ALLOWED_HOSTS names others (a proxy, a mock).
// An empty baseURL means the default endpoint.
func ValidateBaseURL(baseURL string, allowedHosts []string) error {
	baseURL = normalizeBaseURL(baseURL)
	invalid := func(reason string) error {
		return fmt.Errorf("invalid RESPONSIVEVOICE_BASE_URL %q: %s", baseURL, reason)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid RESPONSIVEVOICE_BASE_URL: %w", err)
	}
	switch {
	case !u.IsAbs() || u.Host == "":
		return invalid("absolute URL with host is required")
	case u.User != nil:
		return invalid("userinfo is not allowed")
	case u.RawQuery != "" || u.Fragment != "":
		return invalid("query and fragment are not allowed")
	case !strings.EqualFold(u.Scheme, "https"):
		return invalid("https is required")
	}

	host := strings.ToLower(u.Hostname())
	if !allowedHostSet(allowedHosts)[host] {
		return invalid(fmt.Sprintf("host %q is not in RESPONSIVEVOICE_ALLOWED_HOSTS", host))
	}
	return nil
}

// allowedHostSet reduces entries such as "https://proxy.internal:443/" to
// bare lowercase hostnames. With no usable entry only the default host is
// allowed.
func allowedHostSet(entries []string) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		h := strings.ToLower(strings.TrimSpace(e))
		if i := strings.Index(h, "://"); i >= 0 {
			h = h[i+3:]
		}
		h, _, _ = strings.Cut(h, "/")
		h, _, _ = strings.Cut(h, ":")
		if h != "" {
			set[h] = true
		}
	}
	if len(set) == 0 {
		set[defaultHost] = true
	}
	return set
}
