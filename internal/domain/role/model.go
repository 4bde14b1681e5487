package role

import (
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

// Role groups permission strings granted to users. Permission checks happen
// in the excluded auth layer; this service only stores the records.
type Role struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Permissions []string `bson:"permissions" json:"permissions"`

	types.BaseModel `bson:",inline"`
}

func New(name string, permissions []string) *Role {
	return &Role{
		ID:          types.GenerateUUIDWithPrefix("role"),
		Name:        name,
		Permissions: permissions,
	}
}
