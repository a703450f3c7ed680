package sqlite

import (
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"gorm.io/gorm"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *gorm.DB
}

// internalErr wraps an unexpected store failure.
func internalErr(msg string, err error) error {
	return apperrors.NewAppError(500, msg, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
