package models

// Valores del campo permisos.
const (
	PermisosRestaurant = "Restaurant"
	PermisosAdmin      = "Admin"
	PermisosUser       = "User"
)

// UserDoc: para usuarios provisionados automáticamente (al crear un
// restaurante) userId == restId y solo se setea permisos; email y
// passwordHash existen solo para cuentas que hacen login.
type UserDoc struct {
	UserID       string `json:"userId" bson:"userId"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash,omitempty"`
	Permisos     string `json:"permisos" bson:"permisos"`
	CreatedAt    string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
