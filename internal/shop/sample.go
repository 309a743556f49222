package shop

import (
	"github.com/powerman/must"
)

// SampleData returns the fixed demonstration rows.
func SampleData() Dataset {
	return Dataset{
		Customers: []Customer{
			{1, "John", "Doe", "john.doe@example.com", mustParseDate("1985-01-15")},
			{2, "Jane", "Smith", "jane.smith@example.com", mustParseDate("1990-06-20")},
		},
		Products: []Product{
			{1, "Laptop", Dollars(1000)},
			{2, "Smartphone", Dollars(600)},
			{3, "Headphones", Dollars(100)},
		},
		Orders: []Order{
			{1, 1, mustParseDate("2023-01-10")},
			{2, 2, mustParseDate("2023-01-12")},
		},
		OrderItems: []OrderItem{
			{1, 1, 1, 1},
			{2, 1, 3, 2},
			{3, 2, 2, 1},
			{4, 2, 3, 1},
		},
	}
}

func mustParseDate(s string) Date {
	d, err := ParseDate(s)
	must.PanicIf(err)
	return d
}
