// Package objectid generates and checks the 24-character hexadecimal identifiers
// used for every stored entity.
package objectid

import "go.mongodb.org/mongo-driver/bson/primitive"

// New returns a fresh identifier in lowercase hex form
func New() string {
	return primitive.NewObjectID().Hex()
}

// IsValid reports whether id is exactly 24 hexadecimal characters
func IsValid(id string) bool {
	return primitive.IsValidObjectID(id)
}

// AllValid reports whether every id in ids is valid
func AllValid(ids []string) bool {
	for _, id := range ids {
		if !IsValid(id) {
			return false
		}
	}
	return true
}
