package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
)

type CanPurchaseRepository interface {
	Add(ctx context.Context, purchase models.CanPurchase) (models.CanPurchase, error)
	GetAll(ctx context.Context) ([]models.CanPurchase, error)
	DeleteById(ctx context.Context, id int64) (int64, error)
}

type MySQLCanPurchaseRepository struct {
	db *sql.DB
}

func NewMySQLCanPurchaseRepository(db *sql.DB) *MySQLCanPurchaseRepository {
	return &MySQLCanPurchaseRepository{db: db}
}

func (m *MySQLCanPurchaseRepository) Add(ctx context.Context, purchase models.CanPurchase) (models.CanPurchase, error) {
	newPurchaseQuery := `INSERT INTO can_purchases(quantity, notes, purchase_date) VALUES(?,?,?)`
	result, err := m.db.ExecContext(ctx, newPurchaseQuery, purchase.Quantity, purchase.Notes, purchase.PurchaseDate)
	if err != nil {
		return models.CanPurchase{}, fmt.Errorf("failed to add new can purchase: %w", err)
	}

	purchase.Id, err = result.LastInsertId()
	if err != nil {
		return models.CanPurchase{}, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return purchase, nil
}

func (m *MySQLCanPurchaseRepository) GetAll(ctx context.Context) ([]models.CanPurchase, error) {
	var purchases []models.CanPurchase
	getAllQuery := `SELECT id, quantity, purchase_date, notes FROM can_purchases ORDER BY purchase_date DESC`
	rows, err := m.db.QueryContext(ctx, getAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get all can purchases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := new(models.CanPurchase)
		if err := rows.Scan(&p.Id, &p.Quantity, &p.PurchaseDate, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan failed :%w", err)
		}
		purchases = append(purchases, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return purchases, nil
}

func (m *MySQLCanPurchaseRepository) DeleteById(ctx context.Context, id int64) (int64, error) {
	deleteQuery := `DELETE FROM can_purchases WHERE id = ?`
	res, err := m.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete can purchase: %w", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return changes, nil
}
