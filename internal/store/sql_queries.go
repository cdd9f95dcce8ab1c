// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-auth/models"
)

var usersTable = models.User{}.TableName()

// userColumns is the scan order used by scanUser.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"full_name",
	"password_hash",
	"created_at",
}

func buildInsertUserQuery(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns("username", "email", "full_name", "password_hash", "created_at").
		Values(user.Username, user.Email, user.FullName, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserQuery(builder sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildExistsUserQuery(builder sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return builder.
		Select("1").
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("user_id").
		ToSql()
}
