package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jey-uki/users-api/internal/api/validate"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Age       *int               `json:"age,omitempty" bson:"age,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateUserInput is the create payload. IsActive is a pointer so an
// explicit false survives the default-to-true rule.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      *int   `json:"age"`
	IsActive *bool  `json:"isActive"`
}

// UpdateUserInput carries only the fields present in the payload; nil means
// the field was omitted and the stored value is kept.
type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	IsActive *bool   `json:"isActive"`
}

// Normalize trims name and email and lowercases email. Runs before
// validation and before persistence.
func (in *CreateUserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *CreateUserInput) Validate() error {
	var errs validate.Errs
	if ef := validate.Required("name", in.Name); ef != nil {
		errs = append(errs, *ef)
	} else if ef := validate.MaxLen("name", in.Name, 50); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := validate.Required("email", in.Email); ef != nil {
		errs = append(errs, *ef)
	} else if ef := validate.Email("email", in.Email); ef != nil {
		errs = append(errs, *ef)
	}
	if in.Age != nil {
		if ef := validate.IntRange("age", *in.Age, 0, 120); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (in *UpdateUserInput) Normalize() {
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &e
	}
}

// Validate checks only the fields present in the payload.
func (in *UpdateUserInput) Validate() error {
	var errs validate.Errs
	if in.Name != nil {
		if ef := validate.Required("name", *in.Name); ef != nil {
			errs = append(errs, *ef)
		} else if ef := validate.MaxLen("name", *in.Name, 50); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if in.Email != nil {
		if ef := validate.Required("email", *in.Email); ef != nil {
			errs = append(errs, *ef)
		} else if ef := validate.Email("email", *in.Email); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if in.Age != nil {
		if ef := validate.IntRange("age", *in.Age, 0, 120); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
