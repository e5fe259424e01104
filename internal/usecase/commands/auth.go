package commands

import (
	"context"
	"sync"
	"time"

	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
)

// After this many consecutive failures the result carries a warning
// flag. The counter is display-only: attempts are never blocked.
const lockWarnThreshold = 5

type LoginResult struct {
	Authenticated bool
	Token         string
	ExpiresAt     time.Time
	Attempts      int
	LockWarning   bool
}

type AuthCommands interface {
	// Login compares the SHA-256 of the supplied password against the
	// configured reference hash. clientKey scopes the failed-attempt
	// counter to one client session.
	Login(ctx context.Context, suppliedPassword, clientKey string) (*LoginResult, error)
}

type authCommandsImpl struct {
	cfg          config.AuthConfig
	tokenService *jwt.Service
	clock        clock.Clock

	mu       sync.Mutex
	attempts map[string]int
}

func NewAuthCommands(cfg config.Config, tokenService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		cfg:          cfg.Auth,
		tokenService: tokenService,
		clock:        clk,
		attempts:     make(map[string]int),
	}
}

func (c *authCommandsImpl) Login(_ context.Context, suppliedPassword, clientKey string) (*LoginResult, error) {
	ok, err := password.Verify(c.cfg.AdminPasswordHash, suppliedPassword)
	if err != nil {
		return nil, errs.Wrap(err, "admin password hash misconfigured")
	}

	if !ok {
		attempts := c.recordFailure(clientKey)
		return &LoginResult{
			Attempts:    attempts,
			LockWarning: attempts >= lockWarnThreshold,
		}, nil
	}

	token, err := c.tokenService.GenerateToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue admin token")
	}

	c.resetFailures(clientKey)
	duration, _ := time.ParseDuration(c.cfg.TokenDuration)
	return &LoginResult{
		Authenticated: true,
		Token:         token,
		ExpiresAt:     c.clock.Now().Add(duration),
	}, nil
}

func (c *authCommandsImpl) recordFailure(clientKey string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts[clientKey]++
	return c.attempts[clientKey]
}

func (c *authCommandsImpl) resetFailures(clientKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.attempts, clientKey)
}
