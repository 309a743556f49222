package data

import (
	"errors"
	"fmt"
	"github.com/ansel1/merry"
	"github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"sort"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	DriverDuckDB   = "duckdb"
)

// Dialect holds what differs between the supported engines.
type Dialect struct {
	Driver string
	// Month and Year are format strings taking a date column expression.
	Month string
	Year  string
	// InsertIgnore and IgnoreTail turn INSERT into "insert if absent".
	InsertIgnore string
	IgnoreTail   string

	isDuplicateKey func(error) bool
}

var dialects = map[string]Dialect{
	DriverMySQL: {
		Driver:       DriverMySQL,
		Month:        "MONTH(%s)",
		Year:         "YEAR(%s)",
		InsertIgnore: "INSERT IGNORE INTO",
		isDuplicateKey: func(err error) bool {
			var e *mysql.MySQLError
			return errors.As(err, &e) && e.Number == 1062
		},
	},
	DriverPostgres: {
		Driver:       DriverPostgres,
		Month:        "CAST(EXTRACT(MONTH FROM %s) AS INTEGER)",
		Year:         "CAST(EXTRACT(YEAR FROM %s) AS INTEGER)",
		InsertIgnore: "INSERT INTO",
		IgnoreTail:   " ON CONFLICT DO NOTHING",
		isDuplicateKey: func(err error) bool {
			var e *pq.Error
			return errors.As(err, &e) && e.Code == "23505"
		},
	},
	DriverSQLite: {
		Driver:       DriverSQLite,
		Month:        "CAST(strftime('%%m', %s) AS INTEGER)",
		Year:         "CAST(strftime('%%Y', %s) AS INTEGER)",
		InsertIgnore: "INSERT OR IGNORE INTO",
		isDuplicateKey: func(err error) bool {
			var e sqlite3.Error
			if !errors.As(err, &e) {
				return false
			}
			return e.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				e.ExtendedCode == sqlite3.ErrConstraintUnique
		},
	},
	DriverDuckDB: {
		Driver:       DriverDuckDB,
		Month:        "month(%s)",
		Year:         "year(%s)",
		InsertIgnore: "INSERT OR IGNORE INTO",
		isDuplicateKey: func(err error) bool {
			var e *duckdb.Error
			return errors.As(err, &e) && e.Type == duckdb.ErrorTypeConstraint
		},
	},
}

func init() {
	sqlx.BindDriver(DriverDuckDB, sqlx.QUESTION)
}

func Drivers() []string {
	var xs []string
	for k := range dialects {
		xs = append(xs, k)
	}
	sort.Strings(xs)
	return xs
}

func DialectOf(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, merry.Errorf("unsupported driver %q, want one of %v", driver, Drivers())
	}
	return d, nil
}

func dialectOf(db sqlx.Ext) Dialect {
	if d, ok := dialects[db.DriverName()]; ok {
		return d
	}
	return Dialect{
		Driver:         db.DriverName(),
		Month:          "EXTRACT(MONTH FROM %s)",
		Year:           "EXTRACT(YEAR FROM %s)",
		InsertIgnore:   "INSERT INTO",
		isDuplicateKey: func(error) bool { return false },
	}
}

func (d Dialect) IsDuplicateKey(err error) bool {
	return d.isDuplicateKey != nil && d.isDuplicateKey(err)
}

func (d Dialect) insert(mode SeedMode, table, columns, values string) string {
	if mode == SeedUpsert {
		return fmt.Sprintf("%s %s (%s) VALUES (%s)%s", d.InsertIgnore, table, columns, values, d.IgnoreTail)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, columns, values)
}
