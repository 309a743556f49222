package data

// Tables in dependency order: a table only references tables listed before it.
var Tables = []string{"Customers", "Products", "Orders", "OrderItems"}

var SQLCreate = []string{
	`CREATE TABLE IF NOT EXISTS Customers (
                    CustomerID INT PRIMARY KEY,
                    FirstName VARCHAR(255),
                    LastName VARCHAR(255),
                    Email VARCHAR(255),
                    DateOfBirth DATE
                )`,
	`CREATE TABLE IF NOT EXISTS Products (
                    ProductID INT PRIMARY KEY,
                    ProductName VARCHAR(255),
                    Price DECIMAL(10, 2)
                )`,
	`CREATE TABLE IF NOT EXISTS Orders (
                    OrderID INT PRIMARY KEY,
                    CustomerID INT,
                    OrderDate DATE,
                    FOREIGN KEY (CustomerID) REFERENCES Customers(CustomerID)
                )`,
	`CREATE TABLE IF NOT EXISTS OrderItems (
                    OrderItemID INT PRIMARY KEY,
                    OrderID INT,
                    ProductID INT,
                    Quantity INT,
                    FOREIGN KEY (OrderID) REFERENCES Orders(OrderID),
                    FOREIGN KEY (ProductID) REFERENCES Products(ProductID)
                )`,
}
