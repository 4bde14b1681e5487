package user

import (
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

// User is an application account. Authentication and sessions are handled
// outside this service; users here are plain records carrying a role
// reference the auth layer consumes.
type User struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	RoleID string `bson:"role_id,omitempty" json:"role_id,omitempty"`

	types.BaseModel `bson:",inline"`
}

func New(name, email string) *User {
	return &User{
		ID:    types.GenerateUUIDWithPrefix("user"),
		Name:  name,
		Email: email,
	}
}
