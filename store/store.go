package store

import (
	"context"

	"github.com/Luismorlan/tribe/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	errDuplicate = errors.New("row already exists")
	errNotFound  = errors.New("row not found")
)

// Store is the data access layer of the service. It holds no state besides
// the connection pool, every call is a fresh query and every write runs in
// its own transaction. Failures are logged and reported as nil / false
// results, callers never see storage errors from write paths.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) transaction(ctx context.Context, fn utils.GormTransaction) error {
	return s.conn(ctx).Transaction(fn)
}
