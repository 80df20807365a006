package repository

import (
	"regexp"

	"github.com/Humayun167/green-nest/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// escapeRegex turns user input into a literal pattern.
func escapeRegex(value string) string {
	return regexp.QuoteMeta(value)
}

// visibleOrdersFilter matches orders that count as placed: cash on delivery
// or already paid online.
func visibleOrdersFilter() bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "payment_type", Value: domain.PaymentTypeCOD}},
		bson.D{{Key: "is_paid", Value: true}},
	}}}
}

func newestFirst() bson.D {
	return bson.D{{Key: "created_at", Value: -1}}
}
