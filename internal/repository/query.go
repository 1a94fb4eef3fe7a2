package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFilter builds a case-insensitive regex match OR'ed across the given
// text fields. An empty term matches everything.
func searchFilter(term string, fields ...string) bson.M {
	if term == "" {
		return bson.M{}
	}

	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: primitive.Regex{Pattern: term, Options: "i"}})
	}
	return bson.M{"$or": or}
}

func sortByNewest() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}
