package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-robinhood/models"
)

func TestBuildSaveSessionQuery(t *testing.T) {
	query, args, err := buildSaveSessionQuery(models.StoredSession{Username: "alice"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO sessions (username,sealed_token,salt,account_url,created_at,updated_at) VALUES (?,?,?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT(username) DO UPDATE SET")
	assert.NotContains(t, query, "created_at = excluded.created_at")
	assert.Len(t, args, 6)
}

func TestBuildGetAndDeleteSessionQuery(t *testing.T) {
	query, args, err := buildGetSessionQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "SELECT username, sealed_token, salt, account_url, created_at, updated_at FROM sessions WHERE username = ?", query)
	assert.Equal(t, []any{"alice"}, args)

	query, args, err = buildDeleteSessionQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE username = ?", query)
	assert.Equal(t, []any{"alice"}, args)
}
