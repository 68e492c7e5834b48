package model

import (
	"net/url"
	"strings"
)

// Request carries the ambient, per-request context elements may branch on in
// addition to the controller supplied Data.
type Request struct {
	// Mobile selects the compact layout and small logo assets.
	Mobile bool
	// User is the signed-in user name; empty when anonymous.
	User   string
	Locale string
	Path   string
	Query  url.Values
	// Landing marks the search landing page (no query yet), where
	// advertisements are suppressed.
	Landing bool
}

// LoggedIn reports whether a user is signed in.
func (r Request) LoggedIn() bool {
	return strings.TrimSpace(r.User) != ""
}

// Param returns the first query parameter value for key.
func (r Request) Param(key string) string {
	if r.Query == nil {
		return ""
	}
	return r.Query.Get(key)
}

// DeviceDetector classifies a client as mobile or desktop.
type DeviceDetector interface {
	IsMobile(userAgent string) bool
}

// DeviceDetectorFunc adapts a function to DeviceDetector.
type DeviceDetectorFunc func(userAgent string) bool

func (fn DeviceDetectorFunc) IsMobile(userAgent string) bool { return fn(userAgent) }

var mobileAgentTokens = []string{
	"mobile", "android", "iphone", "ipod", "blackberry", "opera mini",
	"windows phone", "iemobile", "silk/", "kindle", "webos",
}

// UserAgentDetector matches well-known handset tokens in the User-Agent
// header. Tablets reporting "iPad" are treated as desktop.
type UserAgentDetector struct {
	// Extra adds lower-case tokens that also mark a mobile client.
	Extra []string
}

func (d UserAgentDetector) IsMobile(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return false
	}
	for _, token := range mobileAgentTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	for _, token := range d.Extra {
		if token != "" && strings.Contains(ua, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
