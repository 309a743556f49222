package shop

import (
	"database/sql/driver"
	"github.com/ansel1/merry"
	"github.com/duckdb/duckdb-go/v2"
	"math"
	"strconv"
	"strings"
	"time"
)

// Money is an amount in cents.
type Money int64

func Dollars(x float64) Money {
	return Money(math.Round(x * 100))
}

func (m Money) Float64() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float64(), 'f', 2, 64)
}

// Value binds the amount as decimal text so no driver sees a binary float.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan accepts whatever the drivers return for DECIMAL columns and sums:
// integers and floats from sqlite3, decimal text from mysql and postgres,
// duckdb.Decimal from duckdb.
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
	case int64:
		if v > math.MaxInt64/100 || v < math.MinInt64/100 {
			return merry.Errorf("money: %d out of range", v)
		}
		*m = Money(v * 100)
	case float64:
		*m = Dollars(v)
	case []byte:
		return m.parse(string(v))
	case string:
		return m.parse(v)
	case duckdb.Decimal:
		*m = Dollars(v.Float64())
	default:
		return merry.Errorf("money: unsupported source type %T", src)
	}
	return nil
}

func (m *Money) parse(s string) error {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return merry.Prependf(err, "money: %q", s)
	}
	*m = Dollars(x)
	return nil
}

const DateLayout = "2006-01-02"

// Date is a calendar day. It is bound as YYYY-MM-DD text so every driver
// stores it in a form its date functions understand.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, merry.Wrap(err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return merry.Errorf("date: unsupported source type %T", src)
}

func (d *Date) parse(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	x, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = x
	return nil
}
