package dto

import (
	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/pkg/patch"
)

func invalid(field, reason string) error {
	return errorx.Invalid(field, reason)
}

// CreateUserRequest is the sign-up payload.
type CreateUserRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=255"`
	LastName    string `json:"last_name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	AccountType string `json:"account_type" binding:"required"`

	accountType database.AccountType
}

// Validate applies the field rules binding tags cannot express and
// normalizes names and email in place.
func (r *CreateUserRequest) Validate() error {
	var err error
	if r.FirstName, err = normalizeName("first_name", r.FirstName); err != nil {
		return err
	}
	if r.LastName, err = normalizeName("last_name", r.LastName); err != nil {
		return err
	}
	r.Email = NormalizeEmail(r.Email)
	if err := checkPassword(r.Password); err != nil {
		return err
	}
	if r.accountType, err = parseAccountType(r.AccountType); err != nil {
		return err
	}
	return nil
}

// ToModel builds the user row; hash is the bcrypt digest of Password.
func (r *CreateUserRequest) ToModel(hash string) *database.User {
	return &database.User{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    hash,
		AccountType: r.accountType,
	}
}

// UpdateUserRequest is a partial user update. Password changes are not
// accepted here.
type UpdateUserRequest struct {
	FirstName   patch.Optional[string] `json:"first_name"`
	LastName    patch.Optional[string] `json:"last_name"`
	Email       patch.Optional[string] `json:"email"`
	AccountType patch.Optional[string] `json:"account_type"`
}

// Patch validates the present fields and converts them to a store patch.
func (r *UpdateUserRequest) Patch() (database.UserPatch, error) {
	var p database.UserPatch
	if v := r.FirstName.Value(); v != nil {
		name, err := normalizeName("first_name", *v)
		if err != nil {
			return p, err
		}
		p.FirstName = patch.NewOptional(name)
	}
	if v := r.LastName.Value(); v != nil {
		name, err := normalizeName("last_name", *v)
		if err != nil {
			return p, err
		}
		p.LastName = patch.NewOptional(name)
	}
	if v := r.Email.Value(); v != nil {
		email := NormalizeEmail(*v)
		if err := checkEmail(email); err != nil {
			return p, err
		}
		p.Email = patch.NewOptional(email)
	}
	if v := r.AccountType.Value(); v != nil {
		t, err := parseAccountType(*v)
		if err != nil {
			return p, err
		}
		p.AccountType = patch.NewOptional(t)
	}
	return p, nil
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
}

func NewUserResponse(u *database.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		AccountType: u.AccountType.String(),
	}
}

func NewUserResponses(users []*database.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UserLookup is the reduced view returned by the lookup endpoint.
type UserLookup struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
}

func NewUserLookup(u *database.User) UserLookup {
	return UserLookup{
		Name:        u.FirstName + " " + u.LastName,
		Email:       u.Email,
		AccountType: u.AccountType.String(),
	}
}

func parseAccountType(s string) (database.AccountType, error) {
	t, err := database.ParseAccountType(s)
	if err != nil {
		return t, invalid("account_type", "must be one of director, administrator, analyst")
	}
	return t, nil
}
