package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a purchase record submitted as one line of delimited text.
// The id is assigned by the store on insert.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CompanyName     string             `json:"companyName" bson:"companyName"`
	CustomerAddress string             `json:"customerAddress,omitempty" bson:"customerAddress,omitempty"`
	OrderItem       string             `json:"orderItem,omitempty" bson:"orderItem,omitempty"`
	Price           float64            `json:"price,omitempty" bson:"price,omitempty"`
	Currency        string             `json:"currency,omitempty" bson:"currency,omitempty"`
}

// OrderFilter narrows an order listing. Empty fields impose no constraint;
// set fields match as case-insensitive literal substrings.
type OrderFilter struct {
	CompanyName     string
	CustomerAddress string
}

// OrderItemCount is one row of the order-frequency statistic. The item name
// rides in _id because it is the grouping key.
type OrderItemCount struct {
	OrderItem string `json:"_id" bson:"_id"`
	Count     int64  `json:"count" bson:"count"`
}

// CompanyPaid is the summed price over all of a company's orders.
type CompanyPaid struct {
	CompanyName string  `json:"companyName" bson:"companyName"`
	Amount      float64 `json:"amount" bson:"amount"`
}
