package repository

import "github.com/AllanBico/POS-sub000/internal/domain/entity"

// GoodsReceivedRepository define el puerto de persistencia para recepciones.
type GoodsReceivedRepository interface {
	Create(header *entity.GoodsReceived) error
	CreateLineItem(item *entity.GoodsReceivedLineItem) error
	GetByID(id string) (*entity.GoodsReceived, error)
	ListLineItems(goodsReceivedID string) ([]*entity.GoodsReceivedLineItem, error)
}
