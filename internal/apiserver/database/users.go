package database

import (
	"context"
	"strings"

	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/pkg/patch"
)

const entityUser = "user"

func (s *store) GetUser(ctx context.Context, id uint) (*User, error) {
	return getByID[User](ctx, s, entityUser, id)
}

func (s *store) ListUsers(ctx context.Context) ([]*User, error) {
	return listWhere[User](ctx, s, entityUser, nil)
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	user.Email = normalizeEmail(user.Email)
	if err := s.checkEmailFree(ctx, user.Email, 0); err != nil {
		return err
	}
	if err := insert(ctx, s, entityUser, user); err != nil {
		return emailConflict(err, user.Email)
	}
	return nil
}

func (s *store) UpdateUser(ctx context.Context, id uint, p UserPatch) (*User, error) {
	if p.Email.HasValue() {
		if _, err := s.GetUser(ctx, id); err != nil {
			return nil, err
		}
		email := normalizeEmail(*p.Email.Value())
		p.Email = patch.NewOptional(email)
		if err := s.checkEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}
	u, err := update[User](ctx, s, entityUser, id, p.columns())
	if err != nil && p.Email.HasValue() {
		return nil, emailConflict(err, *p.Email.Value())
	}
	return u, err
}

func (s *store) DeleteUser(ctx context.Context, id uint) (*User, error) {
	return remove[User](ctx, s, entityUser, id)
}

func (s *store) ListUsersByAccountType(ctx context.Context, t AccountType) ([]*User, error) {
	return listWhere[User](ctx, s, entityUser, "account_type = ?", t)
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.conn(ctx).Where("email = ?", normalizeEmail(email)).Take(&u).Error
	if err != nil {
		return nil, classify(err, entityUser)
	}
	return &u, nil
}

// checkEmailFree is the advisory duplicate check; the unique index decides.
func (s *store) checkEmailFree(ctx context.Context, email string, except uint) error {
	taken, err := exists[User](ctx, s, entityUser, "email = ? AND id <> ?", email, except)
	if err != nil {
		return err
	}
	if taken {
		return errorx.ErrEmailExists.With("Email", email)
	}
	return nil
}

// emailConflict turns a generic duplicate on users into the email conflict.
func emailConflict(err error, email string) error {
	if errorx.IsKind(err, errorx.KindConflict) {
		return errorx.ErrEmailExists.With("Email", email).Wrap(err)
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
