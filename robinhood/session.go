package robinhood

import "sync"

// session is the mutable credential state shared by all operations.
//
// headers is an immutable snapshot: it is rebuilt from fixedHeaders whenever
// the token changes and swapped under mu, never patched in place. Readers may
// hold on to a snapshot after releasing the lock.
type session struct {
	mu sync.RWMutex

	username string
	password string
	mfaCode  string
	token    string
	account  string
	headers  map[string]string
}

func newSession(username, password, token, mfaCode string) *session {
	return &session{
		username: username,
		password: password,
		mfaCode:  mfaCode,
		token:    token,
		headers:  buildHeaders(token),
	}
}

func buildHeaders(token string) map[string]string {
	h := make(map[string]string, len(fixedHeaders)+1)
	for k, v := range fixedHeaders {
		h[k] = v
	}
	if token != "" {
		h[hdrAuthorization] = "Token " + token
	}
	return h
}

// setToken stores token, rebuilds the header set and forgets the default
// account, which belongs to the previous token's user.
func (s *session) setToken(token string) {
	h := buildHeaders(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.headers = h
	s.account = ""
}

func (s *session) authToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *session) headerSnapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headers
}

func (s *session) setMFACode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mfaCode = code
}

// loginForm returns the credential form for the token endpoint; mfa_code is
// included only when known.
func (s *session) loginForm() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form := map[string]string{
		"username": s.username,
		"password": s.password,
	}
	if s.mfaCode != "" {
		form["mfa_code"] = s.mfaCode
	}
	return form
}

func (s *session) setAccount(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = url
}

func (s *session) defaultAccount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *session) user() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}
