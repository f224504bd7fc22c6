package domain

import "github.com/shopspring/decimal"

// Product is a read-only catalog entry. Products are created out of band
// (cmd/seed for local development) and never mutated by this service.
// Price is stored as a decimal string to keep money arithmetic exact.
type Product struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       string `bson:"price" json:"price"`
	Stock       int    `bson:"stock" json:"stock"`
}

// UnitPrice parses the stored price string.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}
