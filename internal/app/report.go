package app

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/fpawel/shopsql/internal/shop"
	"io"
	"strings"
)

// report prints numbered sections with one tuple per row. The first write
// error stops all further output and is kept in err.
type report struct {
	w   io.Writer
	n   int
	err error
}

func newReport(w io.Writer) *report {
	return &report{w: w}
}

func (r *report) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = merry.Prepend(err, "write report")
	}
}

func (r *report) line(s string) {
	r.printf("%s\n", s)
}

func (r *report) section(title string, args ...interface{}) {
	r.n++
	r.printf("\n%d. %s:\n", r.n, fmt.Sprintf(title, args...))
}

func (r *report) customers(xs []shop.Customer) {
	for _, x := range xs {
		r.line(tuple(x.CustomerID, x.FirstName, x.LastName, x.Email, x.DateOfBirth))
	}
}

func (r *report) orders(xs []shop.Order) {
	for _, x := range xs {
		r.line(tuple(x.OrderID, x.CustomerID, x.OrderDate))
	}
}

func (r *report) orderDetails(xs []shop.OrderDetail) {
	for _, x := range xs {
		r.line(tuple(x.OrderID, x.FirstName, x.LastName, x.Email, x.OrderDate))
	}
}

func (r *report) orderLines(xs []shop.OrderLine) {
	for _, x := range xs {
		r.line(tuple(x.ProductName, x.Price, x.Quantity))
	}
}

func (r *report) spending(xs []shop.CustomerSpending) {
	for _, x := range xs {
		r.line(tuple(x.CustomerID, x.FirstName, x.LastName, x.TotalSpent))
	}
}

// popularProduct prints None for a nil x, as there are no order items.
func (r *report) popularProduct(x *shop.ProductPopularity) {
	if x == nil {
		r.line("None")
		return
	}
	r.line(tuple(x.ProductName, x.TotalOrdered))
}

func (r *report) monthlySales(xs []shop.MonthlySales) {
	for _, x := range xs {
		r.printf("%s distinct orders: %d\n", tuple(x.Month, x.TotalOrders, x.TotalSales), x.DistinctOrders)
	}
}

func tuple(xs ...interface{}) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		switch x := x.(type) {
		case string:
			s[i] = "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
		default:
			s[i] = fmt.Sprint(x)
		}
	}
	return "(" + strings.Join(s, ", ") + ")"
}
