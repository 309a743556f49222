package app

import (
	"github.com/fpawel/shopsql/internal/data"
	"github.com/fpawel/shopsql/internal/shop"
	"github.com/jmoiron/sqlx"
	"github.com/powerman/structlog"
	"io"
	"time"
)

var log = structlog.New(structlog.KeyUnit, "app")

// Run connects, creates and seeds the schema, prints the eight sample
// queries to w and closes the session on every path.
func Run(c Config, w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	seedMode, err := data.ParseSeedMode(c.SeedMode)
	if err != nil {
		return err
	}

	log.Debug("open database", "driver", c.Driver, "host", c.Host, "database", c.Database)
	db, err := data.Open(c.Driver, c.DataSourceName())
	if err != nil {
		return err
	}
	defer log.ErrIfFail(db.Close)

	if err := data.Setup(db, seedMode); err != nil {
		return err
	}
	r := newReport(w)
	r.line("Sample data inserted successfully!")
	return runQueries(db, c, r)
}

func runQueries(db *sqlx.DB, c Config, r *report) error {
	january := [2]shop.Date{
		shop.NewDate(c.SalesYear, time.January, 1),
		shop.NewDate(c.SalesYear, time.January, 31),
	}
	threshold := shop.Dollars(c.HighSpendingThreshold)

	for _, x := range []struct {
		title string
		args  []interface{}
		run   func() error
	}{
		{
			"List all customers",
			nil,
			func() error {
				xs, err := data.ListCustomers(db)
				if err != nil {
					return err
				}
				r.customers(xs)
				return nil
			},
		},
		{
			"Find all orders placed in January %d",
			[]interface{}{c.SalesYear},
			func() error {
				xs, err := data.OrdersBetween(db, january[0], january[1])
				if err != nil {
					return err
				}
				r.orders(xs)
				return nil
			},
		},
		{
			"Get the details of each order, including the customer name and email",
			nil,
			func() error {
				xs, err := data.OrderDetails(db)
				if err != nil {
					return err
				}
				r.orderDetails(xs)
				return nil
			},
		},
		{
			"List the products purchased in a specific order (OrderID = %d)",
			[]interface{}{c.OrderID},
			func() error {
				xs, err := data.ProductsInOrder(db, c.OrderID)
				if err != nil {
					return err
				}
				r.orderLines(xs)
				return nil
			},
		},
		{
			"Calculate the total amount spent by each customer",
			nil,
			func() error {
				xs, err := data.TotalSpentByCustomer(db)
				if err != nil {
					return err
				}
				r.spending(xs)
				return nil
			},
		},
		{
			"Find the most popular product (the one that has been ordered the most)",
			nil,
			func() error {
				x, err := data.MostPopularProduct(db)
				if err != nil {
					return err
				}
				r.popularProduct(x)
				return nil
			},
		},
		{
			"Get the total number of orders and the total sales amount for each month in %d",
			[]interface{}{c.SalesYear},
			func() error {
				xs, err := data.MonthlySales(db, c.SalesYear)
				if err != nil {
					return err
				}
				r.monthlySales(xs)
				return nil
			},
		},
		{
			"Find customers who have spent more than $%v",
			[]interface{}{c.HighSpendingThreshold},
			func() error {
				xs, err := data.HighSpendingCustomers(db, threshold)
				if err != nil {
					return err
				}
				r.spending(xs)
				return nil
			},
		},
	} {
		r.section(x.title, x.args...)
		if err := x.run(); err != nil {
			return err
		}
	}
	return r.err
}
