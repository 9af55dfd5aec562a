package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"georeminder/internal/place/repository"
	"georeminder/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the place domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("place/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("place/repository/sqlite.%s", method)
}
