// Package sanitize wraps the bluemonday policies applied to user supplied
// markup before it is embedded in rendered elements.
package sanitize

import (
	"strings"
	"sync"

	"github.com/gorilla/css/scanner"
	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Markup keeps basic formatting and links from advertiser or wiki supplied
// HTML and drops scripts, styles and event handlers. Links are forced to
// rel="nofollow noopener" and open in a new tab.
func Markup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
}

// Text strips every tag, leaving escaped text only.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

// CSS tokenizes admin supplied style rules and stops at the first "<", so
// the output cannot close the surrounding style element. Comments, HTML
// comment markers and strings or url() values holding "<" are dropped.
func CSS(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	s := scanner.New(trimmed)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return strings.TrimSpace(b.String())
		case scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC:
			continue
		case scanner.TokenChar:
			if tok.Value == "<" {
				return strings.TrimSpace(b.String())
			}
		case scanner.TokenString, scanner.TokenURI:
			if strings.Contains(tok.Value, "<") {
				continue
			}
		}
		b.WriteString(tok.Value)
	}
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.AllowAttrs("class").OnElements("span", "div", "p")
		markupPolicy = policy
	})
	return markupPolicy
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
