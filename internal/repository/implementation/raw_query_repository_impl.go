package implementation

import (
	"context"
	"database/sql"

	"hr-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type RawQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewRawQueryRepository(db *gorm.DB) contract.RawQueryRepository {
	return &RawQueryRepositoryImpl{db: db}
}

// SelectRows executes an already-validated SELECT inside a read-only
// transaction, so even a statement that slipped past the validator cannot
// mutate anything.
func (r *RawQueryRepositoryImpl) SelectRows(ctx context.Context, query string) ([]map[string]interface{}, error) {
	tx := r.db.WithContext(ctx).Begin(&sql.TxOptions{ReadOnly: true})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	var rows []map[string]interface{}
	if err := tx.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
