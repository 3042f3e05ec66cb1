// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-robinhood/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"username",
	"sealed_token",
	"salt",
	"account_url",
	"created_at",
	"updated_at",
}

// psql is the statement builder for SQLite (? placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSaveSessionQuery builds an upsert keyed by username. created_at is
// only written on insert.
func buildSaveSessionQuery(s models.StoredSession) (string, []any, error) {
	return psql.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.Username, s.SealedToken, s.Salt, s.AccountURL, s.CreatedAt, s.UpdatedAt).
		Suffix(`ON CONFLICT(username) DO UPDATE SET
			sealed_token = excluded.sealed_token,
			salt = excluded.salt,
			account_url = excluded.account_url,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildGetSessionQuery(username string) (string, []any, error) {
	return psql.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteSessionQuery(username string) (string, []any, error) {
	return psql.Delete(sessionsTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}
