package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Email     string             `bson:"email"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	State     string             `bson:"state"`
	Zipcode   string             `bson:"zipcode"`
	Country   string             `bson:"country"`
	Phone     string             `bson:"phone"`
}
