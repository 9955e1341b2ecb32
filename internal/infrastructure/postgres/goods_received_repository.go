package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AllanBico/POS-sub000/internal/domain/entity"
	"github.com/AllanBico/POS-sub000/internal/domain/repository"
)

var _ repository.GoodsReceivedRepository = (*GoodsReceivedRepo)(nil)

// GoodsReceivedRepo implementación de recepciones sobre PostgreSQL.
type GoodsReceivedRepo struct {
	q Querier
}

// NewGoodsReceivedRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodsReceivedRepository(q Querier) *GoodsReceivedRepo {
	return &GoodsReceivedRepo{q: q}
}

// Create persiste el encabezado de la recepción.
func (r *GoodsReceivedRepo) Create(header *entity.GoodsReceived) error {
	if header.ID == "" {
		header.ID = uuid.New().String()
	}
	query := `
		INSERT INTO goods_received (id, purchase_order_id, warehouse_id, store_id, received_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		header.ID, header.PurchaseOrderID, header.WarehouseID, header.StoreID,
		header.ReceivedDate, header.CreatedBy, header.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create goods received: %w", err)
	}
	return nil
}

// CreateLineItem persiste un renglón de la recepción.
func (r *GoodsReceivedRepo) CreateLineItem(item *entity.GoodsReceivedLineItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO goods_received_line_items (id, goods_received_id, variant_id, received_quantity, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.GoodsReceivedID, item.VariantID, item.ReceivedQuantity, item.Status,
	)
	if err != nil {
		return fmt.Errorf("create goods received line item: %w", err)
	}
	return nil
}

// GetByID obtiene el encabezado (nil si no existe).
func (r *GoodsReceivedRepo) GetByID(id string) (*entity.GoodsReceived, error) {
	query := `
		SELECT id, purchase_order_id, warehouse_id, store_id, received_date, created_by, created_at
		FROM goods_received WHERE id = $1`
	var g entity.GoodsReceived
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.PurchaseOrderID, &g.WarehouseID, &g.StoreID, &g.ReceivedDate, &g.CreatedBy, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods received: %w", err)
	}
	return &g, nil
}

// ListLineItems lista los renglones de una recepción.
func (r *GoodsReceivedRepo) ListLineItems(goodsReceivedID string) ([]*entity.GoodsReceivedLineItem, error) {
	query := `
		SELECT id, goods_received_id, variant_id, received_quantity, status
		FROM goods_received_line_items WHERE goods_received_id = $1`
	rows, err := r.q.Query(context.Background(), query, goodsReceivedID)
	if err != nil {
		return nil, fmt.Errorf("list goods received line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsReceivedLineItem
	for rows.Next() {
		var li entity.GoodsReceivedLineItem
		if err := rows.Scan(&li.ID, &li.GoodsReceivedID, &li.VariantID, &li.ReceivedQuantity, &li.Status); err != nil {
			return nil, fmt.Errorf("scan goods received line item: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}
