package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Order is an immutable snapshot of a cart at checkout time. Line items
// copy product name and price so later catalog changes never alter
// historical orders.
type Order struct {
	ID          string      `bson:"_id" json:"id"`
	UserID      string      `bson:"user_id" json:"user_id"`
	Customer    Customer    `bson:"customer" json:"customer"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount string      `bson:"total_amount" json:"total_amount"`
	Status      OrderStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

type Customer struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
}

type OrderItem struct {
	ProductID   string `bson:"product_id" json:"product_id"`
	ProductName string `bson:"product_name" json:"product_name"`
	Price       string `bson:"price" json:"price"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	ItemTotal   string `bson:"item_total" json:"item_total"`
}
