package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL.
// Los registros de venta son inmutables: solo INSERT y SELECT.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador del historial de ventas. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create inserta un registro de venta.
func (r *SalesRepo) Create(record *entity.SalesRecord) error {
	query := `
		INSERT INTO sales_records (id, company_id, product_id, date, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.CompanyID, record.ProductID, record.Date, record.Quantity, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales record: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial completo ordenado por fecha ascendente.
func (r *SalesRepo) ListByProduct(productID string) ([]*entity.SalesRecord, error) {
	query := `
		SELECT id, company_id, product_id, date, quantity, created_at
		FROM sales_records
		WHERE product_id = $1
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesRecord
	for rows.Next() {
		var rec entity.SalesRecord
		if err := rows.Scan(&rec.ID, &rec.CompanyID, &rec.ProductID, &rec.Date, &rec.Quantity, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// DailyQuantities agrega las ventas por día, ordenadas ascendente.
// Es la vista de solo lectura que consume el motor de pronóstico.
func (r *SalesRepo) DailyQuantities(productID string) ([]decimal.Decimal, error) {
	query := `
		SELECT SUM(quantity)
		FROM sales_records
		WHERE product_id = $1
		GROUP BY date
		ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("daily quantities: %w", err)
	}
	defer rows.Close()

	var out []decimal.Decimal
	for rows.Next() {
		var q decimal.Decimal
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan daily quantity: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
