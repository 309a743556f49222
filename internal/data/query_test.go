package data

import (
	"github.com/fpawel/shopsql/internal/shop"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestListCustomers(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := ListCustomers(db)
		require.NoError(t, err)
		require.Len(t, xs, 2)
		assert.Equal(t, "John", xs[0].FirstName)
		assert.Equal(t, "Smith", xs[1].LastName)
		assert.Equal(t, "jane.smith@example.com", xs[1].Email)
		assert.Equal(t, "1985-01-15", xs[0].DateOfBirth.String())
	})
}

func TestOrdersBetween(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := OrdersBetween(db, shop.NewDate(2023, time.January, 1), shop.NewDate(2023, time.January, 31))
		require.NoError(t, err)
		require.Len(t, xs, 2)
		assert.Equal(t, "2023-01-10", xs[0].OrderDate.String())
		assert.Equal(t, "2023-01-12", xs[1].OrderDate.String())
		assert.Equal(t, int64(2), xs[1].CustomerID)

		xs, err = OrdersBetween(db, shop.NewDate(2023, time.January, 11), shop.NewDate(2023, time.January, 12))
		require.NoError(t, err)
		require.Len(t, xs, 1)
		assert.Equal(t, int64(2), xs[0].OrderID)

		xs, err = OrdersBetween(db, shop.NewDate(2023, time.February, 1), shop.NewDate(2023, time.February, 28))
		require.NoError(t, err)
		assert.Empty(t, xs)
	})
}

func TestOrderDetails(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := OrderDetails(db)
		require.NoError(t, err)
		require.Len(t, xs, 2)
		assert.Equal(t, int64(1), xs[0].OrderID)
		assert.Equal(t, "Doe", xs[0].LastName)
		assert.Equal(t, "john.doe@example.com", xs[0].Email)
		assert.Equal(t, "Jane", xs[1].FirstName)
		assert.Equal(t, "2023-01-12", xs[1].OrderDate.String())
	})
}

func TestProductsInOrder(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := ProductsInOrder(db, 1)
		require.NoError(t, err)
		assert.Equal(t, []shop.OrderLine{
			{ProductName: "Laptop", Price: shop.Dollars(1000), Quantity: 1},
			{ProductName: "Headphones", Price: shop.Dollars(100), Quantity: 2},
		}, xs)

		xs, err = ProductsInOrder(db, 3)
		require.NoError(t, err)
		assert.Empty(t, xs)
	})
}

func TestTotalSpentByCustomer(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := TotalSpentByCustomer(db)
		require.NoError(t, err)
		assert.Equal(t, []shop.CustomerSpending{
			{CustomerID: 1, FirstName: "John", LastName: "Doe", TotalSpent: shop.Dollars(1200)},
			{CustomerID: 2, FirstName: "Jane", LastName: "Smith", TotalSpent: shop.Dollars(700)},
		}, xs)
	})
}

func TestTotalSpentExcludesCustomersWithoutOrders(t *testing.T) {
	db := openSeeded(t, DriverSQLite, ":memory:")
	require.NoError(t, InsertData(db, SeedInsert, shop.Dataset{
		Customers: []shop.Customer{{CustomerID: 3, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
			DateOfBirth: shop.NewDate(2000, time.March, 3)}},
	}))
	xs, err := TotalSpentByCustomer(db)
	require.NoError(t, err)
	require.Len(t, xs, 2)
	for _, x := range xs {
		assert.NotEqual(t, int64(3), x.CustomerID)
	}
}

func TestHighSpendingCustomers(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := HighSpendingCustomers(db, shop.Dollars(1000))
		require.NoError(t, err)
		require.Len(t, xs, 1)
		assert.Equal(t, int64(1), xs[0].CustomerID)
		assert.Equal(t, shop.Dollars(1200), xs[0].TotalSpent)

		xs, err = HighSpendingCustomers(db, shop.Dollars(1200))
		require.NoError(t, err)
		assert.Empty(t, xs)

		xs, err = HighSpendingCustomers(db, shop.Dollars(500))
		require.NoError(t, err)
		assert.Len(t, xs, 2)
	})
}

func TestMostPopularProduct(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		x, err := MostPopularProduct(db)
		require.NoError(t, err)
		require.NotNil(t, x)
		assert.Equal(t, shop.ProductPopularity{ProductName: "Headphones", TotalOrdered: 3}, *x)
	})
}

func TestMostPopularProductTieLowestID(t *testing.T) {
	db := openDB(t, DriverSQLite, ":memory:")
	require.NoError(t, InsertData(db, SeedInsert, shop.Dataset{
		Customers: []shop.Customer{{CustomerID: 1, FirstName: "A", LastName: "B", Email: "a@b.c",
			DateOfBirth: shop.NewDate(1990, time.May, 5)}},
		Products: []shop.Product{
			{ProductID: 1, ProductName: "Zeta", Price: shop.Dollars(5)},
			{ProductID: 2, ProductName: "Alpha", Price: shop.Dollars(7)},
		},
		Orders: []shop.Order{{OrderID: 1, CustomerID: 1, OrderDate: shop.NewDate(2023, time.June, 1)}},
		OrderItems: []shop.OrderItem{
			{OrderItemID: 1, OrderID: 1, ProductID: 2, Quantity: 2},
			{OrderItemID: 2, OrderID: 1, ProductID: 1, Quantity: 2},
		},
	}))
	x, err := MostPopularProduct(db)
	require.NoError(t, err)
	require.NotNil(t, x)
	assert.Equal(t, "Zeta", x.ProductName)
}

func TestMostPopularProductEmpty(t *testing.T) {
	db := openDB(t, DriverSQLite, ":memory:")
	x, err := MostPopularProduct(db)
	require.NoError(t, err)
	assert.Nil(t, x)
}

func TestMonthlySales(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *sqlx.DB) {
		xs, err := MonthlySales(db, 2023)
		require.NoError(t, err)
		// two orders, four order items: TotalOrders counts the items
		assert.Equal(t, []shop.MonthlySales{
			{Month: 1, TotalOrders: 4, DistinctOrders: 2, TotalSales: shop.Dollars(1900)},
		}, xs)

		xs, err = MonthlySales(db, 2022)
		require.NoError(t, err)
		assert.Empty(t, xs)
	})
}

func TestMonthlySalesSeveralMonths(t *testing.T) {
	db := openSeeded(t, DriverSQLite, ":memory:")
	require.NoError(t, InsertData(db, SeedInsert, shop.Dataset{
		Orders: []shop.Order{
			{OrderID: 3, CustomerID: 1, OrderDate: shop.NewDate(2023, time.March, 31)},
			{OrderID: 4, CustomerID: 2, OrderDate: shop.NewDate(2024, time.January, 2)},
		},
		OrderItems: []shop.OrderItem{
			{OrderItemID: 5, OrderID: 3, ProductID: 2, Quantity: 2},
			{OrderItemID: 6, OrderID: 4, ProductID: 1, Quantity: 1},
		},
	}))
	xs, err := MonthlySales(db, 2023)
	require.NoError(t, err)
	require.Len(t, xs, 2)
	assert.Equal(t, shop.MonthlySales{Month: 3, TotalOrders: 1, DistinctOrders: 1, TotalSales: shop.Dollars(1200)}, xs[1])
}

func TestQueriesReportDatabaseErrors(t *testing.T) {
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = ListCustomers(db)
	require.Error(t, err)
	assert.True(t, IsDatabaseError(err))
	assert.Contains(t, err.Error(), "list customers")
}
