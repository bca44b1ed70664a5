package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/Yemresalcan/calender2025API/internal/repository"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// testClock - часы, которые двигает тест.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	clock  *testClock
	hasher *security.PasswordHasher
	tokens *security.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := newTestClock()

	hasher, err := security.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := security.NewTokenIssuer(testSecret, security.WithClock(clock.Now))
	require.NoError(t, err)

	return &testEnv{clock: clock, hasher: hasher, tokens: tokens}
}

func (e *testEnv) service(repo repository.UserRepository, notifier notify.Notifier) services.AuthService {
	return services.NewAuthService(repo, e.hasher, e.tokens, notifier,
		services.WithClock(e.clock.Now),
		services.WithStoreTimeout(time.Second),
		services.WithNotifyTimeout(time.Second),
	)
}
