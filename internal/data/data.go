package data

import (
	"database/sql"
	"github.com/ansel1/merry"
	"github.com/fpawel/shopsql/internal/shop"
	"github.com/jmoiron/sqlx"
	"github.com/powerman/structlog"
	"strings"
)

var log = structlog.New(structlog.KeyUnit, "data")

func SetLog(l *structlog.Logger) {
	log = l
}

// Open opens a single-connection session and checks it is alive.
func Open(driver, dataSourceName string) (*sqlx.DB, error) {
	d, err := DialectOf(driver)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		dataSourceName = sqliteDSN(dataSourceName)
	}
	conn, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return nil, wrapErr(d, err, "open")
	}
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)
	db := sqlx.NewDb(conn, driver)

	if err := db.Ping(); err != nil {
		log.ErrIfFail(db.Close)
		return nil, wrapErr(d, err, "connect")
	}
	log.Debug("connected", "driver", driver)
	return db, nil
}

// sqliteDSN turns on foreign key enforcement for every connection the driver opens.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}

// CreateTables creates the schema if it does not exist yet.
func CreateTables(db sqlx.Ext) error {
	for i, query := range SQLCreate {
		if _, err := db.Exec(query); err != nil {
			return dbErr(db, err, "create table "+Tables[i])
		}
	}
	return nil
}

type SeedMode string

const (
	// SeedInsert fails with a duplicate key error when the rows already exist.
	SeedInsert SeedMode = "insert"
	// SeedUpsert skips rows whose primary key already exists.
	SeedUpsert SeedMode = "upsert"
)

func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case SeedInsert, "":
		return SeedInsert, nil
	case SeedUpsert:
		return SeedUpsert, nil
	}
	return "", merry.Errorf("unknown seed mode %q, want %q or %q", s, SeedInsert, SeedUpsert)
}

// InsertSampleData loads the fixed demonstration rows. The caller commits.
func InsertSampleData(db sqlx.Ext, mode SeedMode) error {
	return InsertData(db, mode, shop.SampleData())
}

func InsertData(db sqlx.Ext, mode SeedMode, ds shop.Dataset) error {
	d := dialectOf(db)
	for _, x := range []struct {
		table, columns, values string
		rows                   []interface{}
	}{
		{
			"Customers",
			"CustomerID, FirstName, LastName, Email, DateOfBirth",
			":customer_id, :first_name, :last_name, :email, :date_of_birth",
			rowsOf(len(ds.Customers), func(i int) interface{} { return ds.Customers[i] }),
		},
		{
			"Products",
			"ProductID, ProductName, Price",
			":product_id, :product_name, :price",
			rowsOf(len(ds.Products), func(i int) interface{} { return ds.Products[i] }),
		},
		{
			"Orders",
			"OrderID, CustomerID, OrderDate",
			":order_id, :customer_id, :order_date",
			rowsOf(len(ds.Orders), func(i int) interface{} { return ds.Orders[i] }),
		},
		{
			"OrderItems",
			"OrderItemID, OrderID, ProductID, Quantity",
			":order_item_id, :order_id, :product_id, :quantity",
			rowsOf(len(ds.OrderItems), func(i int) interface{} { return ds.OrderItems[i] }),
		},
	} {
		query := d.insert(mode, x.table, x.columns, x.values)
		var inserted int64
		for _, row := range x.rows {
			r, err := sqlx.NamedExec(db, query, row)
			if err != nil {
				return wrapErr(d, err, "insert into "+x.table)
			}
			n, err := r.RowsAffected()
			if err != nil {
				return wrapErr(d, err, "insert into "+x.table)
			}
			inserted += n
		}
		log.Debug("seed", "table", x.table, "rows", len(x.rows), "inserted", inserted, "mode", mode)
	}
	return nil
}

func rowsOf(n int, f func(int) interface{}) []interface{} {
	xs := make([]interface{}, n)
	for i := range xs {
		xs[i] = f(i)
	}
	return xs
}

// CountRows returns the number of rows in one of the Tables.
func CountRows(db sqlx.Ext, table string) (int64, error) {
	known := false
	for _, x := range Tables {
		known = known || x == table
	}
	if !known {
		return 0, merry.Errorf("unknown table %q", table)
	}
	var n int64
	err := sqlx.Get(db, &n, `SELECT COUNT(*) FROM `+table)
	return n, dbErr(db, err, "count "+table)
}

// Setup creates the schema and loads the sample rows in one transaction.
func Setup(db *sqlx.DB, mode SeedMode) error {
	tx, err := db.Beginx()
	if err != nil {
		return dbErr(db, err, "begin")
	}
	if err = CreateTables(tx); err == nil {
		err = InsertSampleData(tx, mode)
	}
	if err != nil {
		log.ErrIfFail(tx.Rollback)
		return err
	}
	return dbErr(db, tx.Commit(), "commit")
}
