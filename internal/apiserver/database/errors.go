package database

import (
	"errors"
	"strings"

	"github.com/ecosedes/facilities/internal/common/errorx"
	"gorm.io/gorm"
)

var duplicateMarkers = []string{
	"UNIQUE constraint failed", // sqlite
	"duplicate key value",      // postgres
	"Duplicate entry",          // mysql
}

var foreignKeyMarkers = []string{
	"FOREIGN KEY constraint failed",   // sqlite
	"violates foreign key constraint", // postgres
	"a foreign key constraint fails",  // mysql
}

// classify maps a driver or gorm error to an errorx kind for entity.
// Already classified errors pass through untouched.
func classify(err error, entity string) error {
	if err == nil {
		return nil
	}
	var xe *errorx.Error
	if errors.As(err, &xe) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorx.NotFound(entity).Wrap(err)
	case errors.Is(err, gorm.ErrDuplicatedKey), containsAny(err.Error(), duplicateMarkers):
		return errorx.ErrDuplicate.With("Entity", entity).Wrap(err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), containsAny(err.Error(), foreignKeyMarkers):
		return errorx.ErrReferentialIntegrity.With("Entity", entity).Wrap(err)
	default:
		return errorx.ErrInternal.Wrap(err)
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
