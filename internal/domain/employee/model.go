package employee

import (
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

// Employee is a staff record referenced by campaign assignments.
type Employee struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`

	types.BaseModel `bson:",inline"`
}

func New(name string) *Employee {
	return &Employee{
		ID:   types.GenerateUUIDWithPrefix("emp"),
		Name: name,
	}
}
