package store

import (
	sq "github.com/Masterminds/squirrel"
)

const appsTable = "app_details"

// buildListAppsQuery selects every document in insertion order.
func (db *DB) buildListAppsQuery() (string, []any, error) {
	return db.builder.
		Select("document").
		From(appsTable).
		OrderBy("id").
		ToSql()
}

// buildInsertAppQuery stores document under name. created_at is filled by
// the column default.
func (db *DB) buildInsertAppQuery(name string, document string) (string, []any, error) {
	return db.builder.
		Insert(appsTable).
		Columns("name", "document").
		Values(name, document).
		ToSql()
}

// buildDeleteAppByNameQuery removes at most one row: the earliest one with
// the given name.
func (db *DB) buildDeleteAppByNameQuery(name string) (string, []any, error) {
	return db.builder.
		Delete(appsTable).
		Where(sq.Expr(
			"id = (SELECT id FROM "+appsTable+" WHERE name = ? ORDER BY id LIMIT 1)",
			name,
		)).
		ToSql()
}
