package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
)

type CatRepository interface {
	Add(ctx context.Context, name string) (models.Cat, error)
	GetAll(ctx context.Context) ([]models.Cat, error)
	NameExists(ctx context.Context, name string) (bool, error)
	// DeleteById removes the cat and all its feedings, returning the
	// number of cat rows removed (zero when the id is unknown).
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type MySQLCatRepository struct {
	db *sql.DB
}

func NewMySQLCatRepository(db *sql.DB) *MySQLCatRepository {
	return &MySQLCatRepository{db: db}
}

func (m *MySQLCatRepository) Add(ctx context.Context, name string) (models.Cat, error) {
	newCatQuery := `INSERT INTO cats(name) VALUES(?)`
	result, err := m.db.ExecContext(ctx, newCatQuery, name)
	if err != nil {
		return models.Cat{}, fmt.Errorf("failed to add new cat: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Cat{}, fmt.Errorf("failed to get last insert id: %w", err)
	}

	var cat models.Cat
	getByIdQuery := "SELECT id, name, created_at FROM cats WHERE id = ?"
	err = m.db.QueryRowContext(ctx, getByIdQuery, id).
		Scan(&cat.Id, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return models.Cat{}, fmt.Errorf("failed to read back new cat: %w", err)
	}
	return cat, nil
}

func (m *MySQLCatRepository) GetAll(ctx context.Context) ([]models.Cat, error) {
	var cats []models.Cat
	getAllQuery := "SELECT id, name, created_at FROM cats ORDER BY name"
	rows, err := m.db.QueryContext(ctx, getAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get all cats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		cat := new(models.Cat)
		if err := rows.Scan(&cat.Id, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan failed :%w", err)
		}
		cats = append(cats, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return cats, nil
}

func (m *MySQLCatRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	nameExistsQuery := "SELECT EXISTS (SELECT 1 FROM cats WHERE LOWER(name) = LOWER(?))"
	err := m.db.QueryRowContext(ctx, nameExistsQuery, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return exists, nil
}

func (m *MySQLCatRepository) DeleteById(ctx context.Context, id int64) (int64, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	// feedings first, then the cat itself
	changes, err := m.delete(ctx, tx, id)
	if err != nil {
		return 0, err
	}
	return changes, tx.Commit()
}

func (m *MySQLCatRepository) delete(ctx context.Context, querier Querier, id int64) (int64, error) {
	deleteFeedingsQuery := "DELETE FROM feedings WHERE cat_id = ?"
	if _, err := querier.ExecContext(ctx, deleteFeedingsQuery, id); err != nil {
		return 0, fmt.Errorf("failed to delete feedings of cat: %w", err)
	}

	deleteCatQuery := "DELETE FROM cats WHERE id = ?"
	res, err := querier.ExecContext(ctx, deleteCatQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cat: %w", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return changes, nil
}
