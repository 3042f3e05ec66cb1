package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	s := models.StoredSession{
		Username:    "alice",
		SealedToken: []byte{1, 2, 3},
		Salt:        []byte{4, 5},
		AccountURL:  "https://api.robinhood.com/accounts/5RY82436/",
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(s.Username, s.SealedToken, s.Salt, s.AccountURL, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_KeepsCreatedAt(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	created := fixedNow.Add(-48 * time.Hour)
	s := models.StoredSession{Username: "alice", SealedToken: []byte{1}, Salt: []byte{2}, CreatedAt: created}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("alice", []byte{1}, []byte{2}, "", created, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), models.StoredSession{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGetSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("alice", []byte{9}, []byte{8}, "acct", fixedNow, fixedNow)
	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE username = ?").
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetSession(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, []byte{9}, got.SealedToken)
	assert.Equal(t, []byte{8}, got.Salt)
	assert.Equal(t, "acct", got.AccountURL)
	assert.True(t, got.CreatedAt.Equal(fixedNow))
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(errors.New("locked"))

	_, err := repo.GetSession(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions WHERE username = ?").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("bob").
		WillReturnError(errors.New("io"))

	require.NoError(t, repo.DeleteSession(context.Background(), "alice"))
	assert.ErrorIs(t, repo.DeleteSession(context.Background(), "bob"), ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSessionRepository_SQLite runs the repository against a real migrated
// database file.
func TestSessionRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "sessions.db")

	db, err := NewConnectSQLite(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	repo := NewSessionRepository(db, logger.Nop())

	_, err = repo.GetSession(ctx, "alice")
	require.ErrorIs(t, err, ErrSessionNotFound)

	first := models.StoredSession{Username: "alice", SealedToken: []byte("s1"), Salt: []byte("salt1"), AccountURL: "a1"}
	require.NoError(t, repo.SaveSession(ctx, first))

	got, err := repo.GetSession(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("s1"), got.SealedToken)
	assert.Equal(t, "a1", got.AccountURL)

	second := models.StoredSession{Username: "alice", SealedToken: []byte("s2"), Salt: []byte("salt2"), AccountURL: "a2"}
	require.NoError(t, repo.SaveSession(ctx, second))

	got, err = repo.GetSession(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("s2"), got.SealedToken)
	assert.Equal(t, []byte("salt2"), got.Salt)
	assert.Equal(t, "a2", got.AccountURL)

	require.NoError(t, repo.DeleteSession(ctx, "alice"))
	require.NoError(t, repo.DeleteSession(ctx, "alice"))
	_, err = repo.GetSession(ctx, "alice")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
