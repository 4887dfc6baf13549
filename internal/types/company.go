package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is the derived registry record for a company name seen in orders.
// Info is an open attribute bag; keys are set through update and never
// include companyName, which is immutable after creation.
type Company struct {
	ID          primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	CompanyName string                 `json:"companyName" bson:"companyName"`
	Info        map[string]interface{} `json:"info,omitempty" bson:"info,omitempty"`
}
