package robinhood

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHeaders(t *testing.T) {
	anon := buildHeaders("")
	assert.NotContains(t, anon, hdrAuthorization)
	assert.Len(t, anon, len(fixedHeaders))

	authed := buildHeaders("tok")
	assert.Equal(t, "Token tok", authed[hdrAuthorization])
	assert.NotContains(t, fixedHeaders, hdrAuthorization)
}

// TestSession_SnapshotIsStable verifies that a snapshot taken before a token
// change is not affected by it.
func TestSession_SnapshotIsStable(t *testing.T) {
	s := newSession("alice", "secret", "old", "")
	before := s.headerSnapshot()

	s.setToken("new")

	assert.Equal(t, "Token old", before[hdrAuthorization])
	assert.Equal(t, "Token new", s.headerSnapshot()[hdrAuthorization])
}

func TestSession_SetTokenForgetsAccount(t *testing.T) {
	s := newSession("", "", "tok", "")
	s.setAccount("https://api.robinhood.com/accounts/1/")

	s.setToken("tok")
	assert.Empty(t, s.defaultAccount())
}

func TestSession_LoginForm(t *testing.T) {
	s := newSession("alice", "secret", "", "")
	assert.Equal(t, map[string]string{"username": "alice", "password": "secret"}, s.loginForm())

	s.setMFACode("123456")
	assert.Equal(t, map[string]string{"username": "alice", "password": "secret", "mfa_code": "123456"}, s.loginForm())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := newSession("alice", "secret", "", "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.setToken("tok")
			s.setAccount("acct")
		}()
		go func() {
			defer wg.Done()
			h := s.headerSnapshot()
			if v, ok := h[hdrAuthorization]; ok {
				assert.Equal(t, "Token tok", v)
			}
			_ = s.defaultAccount()
		}()
	}
	wg.Wait()

	assert.Equal(t, "tok", s.authToken())
}
