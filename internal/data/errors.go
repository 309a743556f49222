package data

import (
	"github.com/ansel1/merry"
	"github.com/jmoiron/sqlx"
)

type errKind int

const (
	kindDatabase errKind = iota + 1
	kindDuplicateKey
)

type errKindKey struct{}

// IsDatabaseError reports whether err came from a database operation:
// connecting, schema statements, inserts or queries.
func IsDatabaseError(err error) bool {
	_, ok := merry.Value(err, errKindKey{}).(errKind)
	return ok
}

// IsDuplicateKey reports whether err is a primary key or unique constraint
// violation, as returned by a second InsertSampleData in SeedInsert mode.
func IsDuplicateKey(err error) bool {
	return merry.Value(err, errKindKey{}) == kindDuplicateKey
}

func wrapErr(d Dialect, err error, what string) error {
	if err == nil {
		return nil
	}
	kind := kindDatabase
	if d.IsDuplicateKey(err) {
		kind = kindDuplicateKey
	}
	return merry.Wrap(err).Prepend(what).WithValue(errKindKey{}, kind)
}

func dbErr(db sqlx.Ext, err error, what string) error {
	if err == nil {
		return nil
	}
	return wrapErr(dialectOf(db), err, what)
}
