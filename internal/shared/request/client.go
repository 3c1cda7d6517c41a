package request

import "strings"

// ClientType distinguishes browser sessions (which get the session cookie)
// from programmatic API clients (which only get the bearer token).
type ClientType string

const (
	ClientWeb ClientType = "web"
	ClientAPI ClientType = "api"
)

// ResolveClientType honors an explicit X-Client-Type header and otherwise
// falls back to sniffing the User-Agent for a browser.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "web":
		return ClientWeb
	case "api", "mobile":
		return ClientAPI
	}
	if strings.Contains(userAgent, "Mozilla") {
		return ClientWeb
	}
	return ClientAPI
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
