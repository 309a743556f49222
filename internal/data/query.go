package data

import (
	"database/sql"
	"fmt"
	"github.com/fpawel/shopsql/internal/shop"
	"github.com/jmoiron/sqlx"
)

func ListCustomers(db sqlx.Ext) (xs []shop.Customer, err error) {
	err = sqlx.Select(db, &xs, `
SELECT CustomerID  AS customer_id,
       FirstName   AS first_name,
       LastName    AS last_name,
       Email       AS email,
       DateOfBirth AS date_of_birth
FROM Customers
ORDER BY CustomerID`)
	return xs, queryDone(db, err, "list customers", len(xs))
}

// OrdersBetween returns orders placed within the closed interval [from, to].
func OrdersBetween(db sqlx.Ext, from, to shop.Date) (xs []shop.Order, err error) {
	err = sqlx.Select(db, &xs, db.Rebind(`
SELECT OrderID AS order_id, CustomerID AS customer_id, OrderDate AS order_date
FROM Orders
WHERE OrderDate BETWEEN ? AND ?
ORDER BY OrderID`), from, to)
	return xs, queryDone(db, err, "orders between", len(xs))
}

func OrderDetails(db sqlx.Ext) (xs []shop.OrderDetail, err error) {
	err = sqlx.Select(db, &xs, `
SELECT o.OrderID AS order_id,
       c.FirstName AS first_name,
       c.LastName AS last_name,
       c.Email AS email,
       o.OrderDate AS order_date
FROM Orders o
JOIN Customers c ON o.CustomerID = c.CustomerID
ORDER BY o.OrderID`)
	return xs, queryDone(db, err, "order details", len(xs))
}

func ProductsInOrder(db sqlx.Ext, orderID int64) (xs []shop.OrderLine, err error) {
	err = sqlx.Select(db, &xs, db.Rebind(`
SELECT p.ProductName AS product_name, p.Price AS price, oi.Quantity AS quantity
FROM OrderItems oi
JOIN Products p ON oi.ProductID = p.ProductID
WHERE oi.OrderID = ?
ORDER BY oi.OrderItemID`), orderID)
	return xs, queryDone(db, err, "products in order", len(xs))
}

const sqlSpending = `
SELECT c.CustomerID AS customer_id,
       c.FirstName AS first_name,
       c.LastName AS last_name,
       SUM(p.Price * oi.Quantity) AS total_spent
FROM Customers c
JOIN Orders o ON c.CustomerID = o.CustomerID
JOIN OrderItems oi ON o.OrderID = oi.OrderID
JOIN Products p ON oi.ProductID = p.ProductID
GROUP BY c.CustomerID, c.FirstName, c.LastName`

// TotalSpentByCustomer sums Price*Quantity over all orders of each customer.
// Customers without orders are not listed.
func TotalSpentByCustomer(db sqlx.Ext) (xs []shop.CustomerSpending, err error) {
	err = sqlx.Select(db, &xs, sqlSpending+`
ORDER BY c.CustomerID`)
	return xs, queryDone(db, err, "total spent", len(xs))
}

// HighSpendingCustomers is TotalSpentByCustomer limited to totals above threshold.
func HighSpendingCustomers(db sqlx.Ext, threshold shop.Money) (xs []shop.CustomerSpending, err error) {
	err = sqlx.Select(db, &xs, db.Rebind(sqlSpending+`
HAVING SUM(p.Price * oi.Quantity) > CAST(? AS DECIMAL(20, 2))
ORDER BY c.CustomerID`), threshold)
	return xs, queryDone(db, err, "high spending customers", len(xs))
}

// MostPopularProduct returns the product with the largest total ordered
// quantity, nil if nothing was ordered. Among equal totals the product with
// the lowest ProductID wins.
func MostPopularProduct(db sqlx.Ext) (*shop.ProductPopularity, error) {
	var x shop.ProductPopularity
	err := sqlx.Get(db, &x, `
SELECT p.ProductName AS product_name, SUM(oi.Quantity) AS total_ordered
FROM Products p
JOIN OrderItems oi ON p.ProductID = oi.ProductID
GROUP BY p.ProductName
ORDER BY total_ordered DESC, MIN(p.ProductID)
LIMIT 1`)
	if err == sql.ErrNoRows {
		log.Debug("most popular product", "rows", 0)
		return nil, nil
	}
	if err := queryDone(db, err, "most popular product", 1); err != nil {
		return nil, err
	}
	return &x, nil
}

// MonthlySales groups the order items of the given year by calendar month.
func MonthlySales(db sqlx.Ext, year int) (xs []shop.MonthlySales, err error) {
	d := dialectOf(db)
	month := fmt.Sprintf(d.Month, "o.OrderDate")
	query := fmt.Sprintf(`
SELECT %[1]s AS sales_month,
       COUNT(*) AS total_orders,
       COUNT(DISTINCT o.OrderID) AS distinct_orders,
       SUM(p.Price * oi.Quantity) AS total_sales
FROM Orders o
JOIN OrderItems oi ON o.OrderID = oi.OrderID
JOIN Products p ON oi.ProductID = p.ProductID
WHERE %[2]s = ?
GROUP BY %[1]s
ORDER BY sales_month`, month, fmt.Sprintf(d.Year, "o.OrderDate"))
	err = sqlx.Select(db, &xs, db.Rebind(query), year)
	return xs, queryDone(db, err, "monthly sales", len(xs))
}

func queryDone(db sqlx.Ext, err error, what string, rows int) error {
	if err != nil {
		return dbErr(db, err, what)
	}
	log.Debug(what, "rows", rows)
	return nil
}
