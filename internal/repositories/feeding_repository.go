package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/go-sql-driver/mysql"
)

// ErrCatMissing reports an insert against a cat id the foreign key
// constraint rejected.
var ErrCatMissing = errors.New("cat does not exist")

const mysqlErrNoReferencedRow = 1452

type FeedingRepository interface {
	Add(ctx context.Context, feeding models.Feeding) (models.Feeding, error)
	GetByCatId(ctx context.Context, catId int64) ([]models.Feeding, error)
	// DeleteById reports the number of rows removed instead of failing
	// on an unknown id.
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type MySQLFeedingRepository struct {
	db *sql.DB
}

func NewMySQLFeedingRepository(db *sql.DB) *MySQLFeedingRepository {
	return &MySQLFeedingRepository{db: db}
}

func (m *MySQLFeedingRepository) Add(ctx context.Context, feeding models.Feeding) (models.Feeding, error) {
	newFeedingQuery := `INSERT INTO feedings(cat_id, amount, timestamp) VALUES(?,?,?)`
	result, err := m.db.ExecContext(ctx, newFeedingQuery, feeding.CatId, feeding.Amount, feeding.Timestamp)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoReferencedRow {
			return models.Feeding{}, ErrCatMissing
		}
		return models.Feeding{}, fmt.Errorf("failed to add new feeding: %w", err)
	}

	feeding.Id, err = result.LastInsertId()
	if err != nil {
		return models.Feeding{}, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return feeding, nil
}

func (m *MySQLFeedingRepository) GetByCatId(ctx context.Context, catId int64) ([]models.Feeding, error) {
	var feedings []models.Feeding
	getByCatIdQuery := `SELECT id, cat_id, amount, timestamp FROM feedings WHERE cat_id = ? ORDER BY timestamp DESC`
	rows, err := m.db.QueryContext(ctx, getByCatIdQuery, catId)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedings of cat: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f := new(models.Feeding)
		if err := rows.Scan(&f.Id, &f.CatId, &f.Amount, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scan failed :%w", err)
		}
		feedings = append(feedings, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return feedings, nil
}

func (m *MySQLFeedingRepository) DeleteById(ctx context.Context, id int64) (int64, error) {
	deleteQuery := `DELETE FROM feedings WHERE id = ?`
	res, err := m.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete feeding: %w", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return changes, nil
}
