// Package store holds the lookup primitives shared by the repositories.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"diet-diary/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var byPrimaryKey = clause.OrderByColumn{
	Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey},
}

// Conditions is a column -> value equality filter. Repositories build it from
// their typed filter structs.
type Conditions map[string]any

// GetOne returns the only row matching conds. No match yields
// domain.ErrNotFound and more than one match domain.ErrMultipleFound.
func GetOne[T any](ctx context.Context, db *gorm.DB, conds Conditions) (*T, error) {
	var rows []T
	if err := db.WithContext(ctx).Where(map[string]any(conds)).Order(byPrimaryKey).Limit(2).Find(&rows).Error; err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, domain.ErrMultipleFound
	}
}

// GetOrCreate looks a row up by conds and inserts build() when none exists.
// The boolean reports whether a row was inserted. Concurrent callers may both
// insert; the schema carries no unique constraint to stop them.
func GetOrCreate[T any](ctx context.Context, db *gorm.DB, conds Conditions, build func() *T) (*T, bool, error) {
	var (
		row     *T
		created bool
	)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := GetOne[T](ctx, tx, conds)
		if err == nil {
			row = found
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		row = build()
		if err := tx.Create(row).Error; err != nil {
			return Translate(err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return row, created, nil
}

// Translate maps constraint violations reported by the driver onto
// domain.ErrIntegrity.
func Translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", domain.ErrIntegrity, err)
	}
	return err
}

// Contains returns a substring predicate on column that ignores ASCII case,
// the LIKE semantics of sqlite. Bind it with ContainsPattern.
func Contains(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return fmt.Sprintf(`%s ILIKE ? ESCAPE '\'`, column)
	}
	return fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, column)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into a LIKE pattern matching s literally anywhere
// in the value.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
