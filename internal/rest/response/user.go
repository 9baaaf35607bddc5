package response

import "github.com/gamewire/gamewire/domain"

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:   u.ID,
		Name: u.Name,
	}
}
