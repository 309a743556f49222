package shop

type Customer struct {
	CustomerID  int64  `db:"customer_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	DateOfBirth Date   `db:"date_of_birth"`
}

type Product struct {
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	Price       Money  `db:"price"`
}

type Order struct {
	OrderID    int64 `db:"order_id"`
	CustomerID int64 `db:"customer_id"`
	OrderDate  Date  `db:"order_date"`
}

type OrderItem struct {
	OrderItemID int64 `db:"order_item_id"`
	OrderID     int64 `db:"order_id"`
	ProductID   int64 `db:"product_id"`
	Quantity    int64 `db:"quantity"`
}

// OrderDetail is an order joined with the customer who placed it.
type OrderDetail struct {
	OrderID   int64  `db:"order_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	OrderDate Date   `db:"order_date"`
}

// OrderLine is a product purchased in an order.
type OrderLine struct {
	ProductName string `db:"product_name"`
	Price       Money  `db:"price"`
	Quantity    int64  `db:"quantity"`
}

type CustomerSpending struct {
	CustomerID int64  `db:"customer_id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	TotalSpent Money  `db:"total_spent"`
}

type ProductPopularity struct {
	ProductName  string `db:"product_name"`
	TotalOrdered int64  `db:"total_ordered"`
}

// MonthlySales aggregates one calendar month. TotalOrders counts joined
// order item rows, so an order with several items is counted once per item;
// DistinctOrders counts each order once.
type MonthlySales struct {
	Month          int64 `db:"sales_month"`
	TotalOrders    int64 `db:"total_orders"`
	DistinctOrders int64 `db:"distinct_orders"`
	TotalSales     Money `db:"total_sales"`
}

// Dataset is a set of rows for all four tables.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}
