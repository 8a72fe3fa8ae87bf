package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReviewDoc es una review de un usuario sobre un restaurante. Vive en la
// colección `reviews` con restId como contención (el equivalente a la
// subcolección del esquema original); el store no garantiza integridad
// referencial, de eso se encarga el borrado en cascada.
type ReviewDoc struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	RestID    string             `json:"restId" bson:"restId"`
	UserID    string             `json:"userId,omitempty" bson:"userId,omitempty"`
	Rating    float64            `json:"rating" bson:"rating"`
	Text      string             `json:"text,omitempty" bson:"text,omitempty"`
	CreatedAt string             `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
