package users

import "time"

// userModel is the stored shape of an entry in the users collection.
type userModel struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m userModel) toDomain() User {
	return User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		IsAdmin:   m.IsAdmin,
		CreatedAt: m.CreatedAt,
	}
}
