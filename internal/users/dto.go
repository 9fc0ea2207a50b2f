package users

import "github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"

// DTO is the user shape served to the storefront. The password hash never
// leaves the service layer.
type DTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ToDTO strips a user model down to its public fields.
func ToDTO(u *models.User) *DTO {
	return &DTO{ID: u.ID, Email: u.Email, Name: u.Name}
}
