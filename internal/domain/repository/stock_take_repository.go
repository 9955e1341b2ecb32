package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// StockTakeRepository define el puerto de persistencia para conteos físicos.
type StockTakeRepository interface {
	Create(stockTake *entity.StockTake) error
	GetByID(id string) (*entity.StockTake, error)
}
