// Package csrf issues and checks the anti-forgery tokens echoed into admin
// links and forms. A token is "<unix seconds>|<hex mac>" where the MAC is a
// keyed BLAKE2b-256 over the user name and timestamp.
package csrf

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrMalformedToken = errors.New("csrf: malformed token")
	ErrInvalidToken   = errors.New("csrf: invalid token")
	ErrExpiredToken   = errors.New("csrf: token expired")
)

// DefaultMaxAge matches the admin session lifetime.
const DefaultMaxAge = time.Hour

// Manager generates and validates tokens with a shared secret.
type Manager struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxAge sets how long a token stays valid.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager requires a secret of 16 to 64 bytes, the BLAKE2b key range.
func NewManager(secret []byte, options ...Option) (*Manager, error) {
	if len(secret) < 16 || len(secret) > blake2b.Size {
		return nil, fmt.Errorf("csrf: secret must be 16-%d bytes, got %d", blake2b.Size, len(secret))
	}
	m := &Manager{
		key:    append([]byte(nil), secret...),
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// Generate issues a token for user at the current time.
func (m *Manager) Generate(user string) (string, error) {
	stamp := m.now().Unix()
	mac, err := m.sign(user, stamp)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(stamp, 10) + "|" + hex.EncodeToString(mac), nil
}

// Validate checks that token was issued for user and is not older than the
// configured max age.
func (m *Manager) Validate(user, token string) error {
	stampRaw, macRaw, ok := strings.Cut(strings.TrimSpace(token), "|")
	if !ok || stampRaw == "" || macRaw == "" {
		return ErrMalformedToken
	}
	stamp, err := strconv.ParseInt(stampRaw, 10, 64)
	if err != nil {
		return ErrMalformedToken
	}
	given, err := hex.DecodeString(macRaw)
	if err != nil {
		return ErrMalformedToken
	}

	want, err := m.sign(user, stamp)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(given, want) != 1 {
		return ErrInvalidToken
	}

	issued := time.Unix(stamp, 0)
	if m.now().Sub(issued) > m.maxAge {
		return ErrExpiredToken
	}
	return nil
}

func (m *Manager) sign(user string, stamp int64) ([]byte, error) {
	h, err := blake2b.New256(m.key)
	if err != nil {
		return nil, fmt.Errorf("csrf: init mac: %w", err)
	}
	h.Write([]byte(user))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(stamp, 10)))
	return h.Sum(nil), nil
}
