package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AllanBico/POS-sub000/internal/application/events"
	"github.com/AllanBico/POS-sub000/internal/application/inventory"
	"github.com/AllanBico/POS-sub000/internal/domain"
	"github.com/AllanBico/POS-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: un almacén en memoria con semántica transaccional.
//
// memStore implementa inventory.TxRunner tomando un snapshot del estado antes
// de ejecutar fn y restaurándolo si fn falla. Así los tests de los casos de uso
// verifican atomicidad real (todo-o-nada) sin una base de datos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUser     = "user-1"
	testApprover = "supervisor-1"
	warehouseID  = "wh-1"
	storeID      = "st-1"
)

type memState struct {
	variants      map[string]entity.Variant
	ledger        map[string]entity.Inventory // clave: variante|tipo|ubicación
	movements     []entity.StockMovement
	serials       map[string]entity.SerialNumber // clave: serial (unicidad global)
	orders        map[string]entity.PurchaseOrder
	orderItems    []entity.PurchaseOrderLineItem
	received      map[string]entity.GoodsReceived
	receivedItems []entity.GoodsReceivedLineItem
	adjustments   map[string]entity.StockAdjustment
	stockTakes    map[string]entity.StockTake
	warehouses    map[string]entity.Warehouse
	stores        map[string]entity.Store
}

func newMemState() *memState {
	return &memState{
		variants:    make(map[string]entity.Variant),
		ledger:      make(map[string]entity.Inventory),
		serials:     make(map[string]entity.SerialNumber),
		orders:      make(map[string]entity.PurchaseOrder),
		received:    make(map[string]entity.GoodsReceived),
		adjustments: make(map[string]entity.StockAdjustment),
		stockTakes:  make(map[string]entity.StockTake),
		warehouses:  make(map[string]entity.Warehouse),
		stores:      make(map[string]entity.Store),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	c.movements = append([]entity.StockMovement(nil), s.movements...)
	for k, v := range s.serials {
		c.serials[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	c.orderItems = append([]entity.PurchaseOrderLineItem(nil), s.orderItems...)
	for k, v := range s.received {
		c.received[k] = v
	}
	c.receivedItems = append([]entity.GoodsReceivedLineItem(nil), s.receivedItems...)
	for k, v := range s.adjustments {
		v.SerialNumbers = append([]string(nil), v.SerialNumbers...)
		c.adjustments[k] = v
	}
	for k, v := range s.stockTakes {
		c.stockTakes[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.stores {
		c.stores[k] = v
	}
	return c
}

func ledgerKey(variantID string, loc entity.LocationRef) string {
	return variantID + "|" + loc.Type() + "|" + loc.ID()
}

// memStore es el TxRunner en memoria más los repositorios atados a su estado.
type memStore struct {
	mu    sync.Mutex
	state *memState
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (s *memStore) Run(_ context.Context, fn func(repos inventory.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state.clone()
	if err := fn(s.repos()); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *memStore) repos() inventory.Repos {
	return inventory.Repos{
		Variants:       &memVariantRepo{s},
		Ledger:         &memInventoryRepo{s},
		Movements:      &memMovementRepo{s},
		Serials:        &memSerialRepo{s},
		PurchaseOrders: &memPurchaseOrderRepo{s},
		GoodsReceived:  &memGoodsReceivedRepo{s},
		Adjustments:    &memAdjustmentRepo{s},
		StockTakes:     &memStockTakeRepo{s},
	}
}

// ── Variantes ────────────────────────────────────────────────────────────────

type memVariantRepo struct{ s *memStore }

func (r *memVariantRepo) Create(v *entity.Variant) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	r.s.state.variants[v.ID] = *v
	return nil
}

func (r *memVariantRepo) GetByID(id string) (*entity.Variant, error) {
	v, ok := r.s.state.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVariantRepo) AdjustStock(id string, delta int64) error {
	v, ok := r.s.state.variants[id]
	if !ok {
		return domain.ErrNotFound
	}
	if v.StockQuantity+delta < 0 {
		return domain.ErrInsufficientStock
	}
	v.StockQuantity += delta
	r.s.state.variants[id] = v
	return nil
}

// ── Ledger ───────────────────────────────────────────────────────────────────

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Get(variantID string, loc entity.LocationRef) (*entity.Inventory, error) {
	if inv, ok := r.s.state.ledger[ledgerKey(variantID, loc)]; ok {
		return &inv, nil
	}
	inv := entity.Inventory{VariantID: variantID}
	inv.WarehouseID, inv.StoreID = locationPtrs(loc)
	return &inv, nil
}

func (r *memInventoryRepo) GetForUpdate(variantID string, loc entity.LocationRef) (*entity.Inventory, error) {
	return r.Get(variantID, loc)
}

func (r *memInventoryRepo) Upsert(inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	r.s.state.ledger[ledgerKey(inv.VariantID, inv.Location())] = *inv
	return nil
}

func (r *memInventoryRepo) SumByVariant(variantID string) (int64, error) {
	var sum int64
	for _, inv := range r.s.state.ledger {
		if inv.VariantID == variantID {
			sum += inv.Quantity
		}
	}
	return sum, nil
}

func (r *memInventoryRepo) ListByVariant(variantID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.state.ledger {
		if inv.VariantID == variantID {
			row := inv
			out = append(out, &row)
		}
	}
	return out, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	r.s.state.movements = append(r.s.state.movements, *m)
	return nil
}

func (r *memMovementRepo) ListByVariant(variantID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.s.state.movements {
		if r.s.state.movements[i].VariantID == variantID {
			m := r.s.state.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

// ── Series ───────────────────────────────────────────────────────────────────

type memSerialRepo struct{ s *memStore }

func (r *memSerialRepo) Assign(serials []string, variantID, movementID string) error {
	for _, serial := range serials {
		if _, exists := r.s.state.serials[serial]; exists {
			return domain.ErrDuplicateSerial
		}
		movID := movementID
		r.s.state.serials[serial] = entity.SerialNumber{
			ID:              uuid.NewString(),
			Serial:          serial,
			VariantID:       variantID,
			StockMovementID: &movID,
		}
	}
	return nil
}

func (r *memSerialRepo) Release(serials []string, variantID string) error {
	for _, serial := range serials {
		row, ok := r.s.state.serials[serial]
		if !ok || row.VariantID != variantID {
			return domain.ErrSerialNotFound
		}
		delete(r.s.state.serials, serial)
	}
	return nil
}

func (r *memSerialRepo) ListByMovement(movementID string) ([]*entity.SerialNumber, error) {
	var out []*entity.SerialNumber
	for _, row := range r.s.state.serials {
		if row.StockMovementID != nil && *row.StockMovementID == movementID {
			sn := row
			out = append(out, &sn)
		}
	}
	return out, nil
}

// ── Órdenes de compra ────────────────────────────────────────────────────────

type memPurchaseOrderRepo struct{ s *memStore }

func (r *memPurchaseOrderRepo) Create(order *entity.PurchaseOrder, items []*entity.PurchaseOrderLineItem) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.s.state.orders[order.ID] = *order
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.PurchaseOrderID = order.ID
		r.s.state.orderItems = append(r.s.state.orderItems, *item)
	}
	return nil
}

func (r *memPurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	order, ok := r.s.state.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *memPurchaseOrderRepo) GetLineItemForUpdate(purchaseOrderID, variantID string) (*entity.PurchaseOrderLineItem, error) {
	for i := range r.s.state.orderItems {
		item := r.s.state.orderItems[i]
		if item.PurchaseOrderID == purchaseOrderID && item.VariantID == variantID {
			return &item, nil
		}
	}
	return nil, nil
}

func (r *memPurchaseOrderRepo) UpdateLineItemReceived(item *entity.PurchaseOrderLineItem) error {
	for i := range r.s.state.orderItems {
		if r.s.state.orderItems[i].ID == item.ID {
			r.s.state.orderItems[i].ReceivedQuantity = item.ReceivedQuantity
			return nil
		}
	}
	return domain.ErrLineItemNotFound
}

func (r *memPurchaseOrderRepo) ListLineItems(purchaseOrderID string) ([]*entity.PurchaseOrderLineItem, error) {
	var out []*entity.PurchaseOrderLineItem
	for i := range r.s.state.orderItems {
		if r.s.state.orderItems[i].PurchaseOrderID == purchaseOrderID {
			item := r.s.state.orderItems[i]
			out = append(out, &item)
		}
	}
	return out, nil
}

func (r *memPurchaseOrderRepo) UpdateStatus(id, status string) error {
	order, ok := r.s.state.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	r.s.state.orders[id] = order
	return nil
}

// ── Recepciones ──────────────────────────────────────────────────────────────

type memGoodsReceivedRepo struct{ s *memStore }

func (r *memGoodsReceivedRepo) Create(header *entity.GoodsReceived) error {
	if header.ID == "" {
		header.ID = uuid.NewString()
	}
	r.s.state.received[header.ID] = *header
	return nil
}

func (r *memGoodsReceivedRepo) CreateLineItem(item *entity.GoodsReceivedLineItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.s.state.receivedItems = append(r.s.state.receivedItems, *item)
	return nil
}

func (r *memGoodsReceivedRepo) GetByID(id string) (*entity.GoodsReceived, error) {
	header, ok := r.s.state.received[id]
	if !ok {
		return nil, nil
	}
	return &header, nil
}

func (r *memGoodsReceivedRepo) ListLineItems(goodsReceivedID string) ([]*entity.GoodsReceivedLineItem, error) {
	var out []*entity.GoodsReceivedLineItem
	for i := range r.s.state.receivedItems {
		if r.s.state.receivedItems[i].GoodsReceivedID == goodsReceivedID {
			item := r.s.state.receivedItems[i]
			out = append(out, &item)
		}
	}
	return out, nil
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

type memAdjustmentRepo struct{ s *memStore }

func (r *memAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	stored := *a
	stored.SerialNumbers = append([]string(nil), a.SerialNumbers...)
	r.s.state.adjustments[a.ID] = stored
	return nil
}

func (r *memAdjustmentRepo) GetByID(id string) (*entity.StockAdjustment, error) {
	a, ok := r.s.state.adjustments[id]
	if !ok {
		return nil, nil
	}
	a.SerialNumbers = append([]string(nil), a.SerialNumbers...)
	return &a, nil
}

func (r *memAdjustmentRepo) GetForUpdate(id string) (*entity.StockAdjustment, error) {
	return r.GetByID(id)
}

func (r *memAdjustmentRepo) MarkApproved(a *entity.StockAdjustment) error {
	stored, ok := r.s.state.adjustments[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = a.Status
	stored.ApprovedBy = a.ApprovedBy
	stored.ApprovedAt = a.ApprovedAt
	r.s.state.adjustments[a.ID] = stored
	return nil
}

// ── Conteos físicos ──────────────────────────────────────────────────────────

type memStockTakeRepo struct{ s *memStore }

func (r *memStockTakeRepo) Create(st *entity.StockTake) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	r.s.state.stockTakes[st.ID] = *st
	return nil
}

func (r *memStockTakeRepo) GetByID(id string) (*entity.StockTake, error) {
	st, ok := r.s.state.stockTakes[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// ── Bodegas y tiendas ────────────────────────────────────────────────────────

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	r.s.state.warehouses[w.ID] = *w
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.s.state.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

type memStoreRepo struct{ s *memStore }

func (r *memStoreRepo) Create(st *entity.Store) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	r.s.state.stores[st.ID] = *st
	return nil
}

func (r *memStoreRepo) GetByID(id string) (*entity.Store, error) {
	st, ok := r.s.state.stores[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// ── Publisher que captura eventos emitidos ───────────────────────────────────

type recordPublisher struct {
	events []events.Event
}

func (p *recordPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordPublisher) typesPublished() []string {
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: almacén sembrado con una bodega, una tienda, dos variantes y una
// orden de compra "ordered" (laptop x20, mouse x10) hacia la bodega wh-1.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store       *memStore
	published   *recordPublisher
	receiveUC   *inventory.ReceiveGoodsUseCase
	adjustUC    *inventory.StockAdjustmentUseCase
	stockTakeUC *inventory.StockTakeUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	repos := store.repos()
	published := &recordPublisher{}

	require.NoError(t, (&memWarehouseRepo{store}).Create(&entity.Warehouse{ID: warehouseID, Name: "Bodega Central"}))
	require.NoError(t, (&memStoreRepo{store}).Create(&entity.Store{ID: storeID, Name: "Tienda Norte"}))
	require.NoError(t, repos.Variants.Create(&entity.Variant{ID: "var-laptop", SKU: "LAP-001", Name: "Laptop"}))
	require.NoError(t, repos.Variants.Create(&entity.Variant{ID: "var-mouse", SKU: "MOU-001", Name: "Mouse"}))

	whID := warehouseID
	order := &entity.PurchaseOrder{
		ID:          "po-1",
		SupplierID:  "sup-1",
		WarehouseID: &whID,
		Status:      entity.PurchaseOrderOrdered,
		OrderDate:   time.Now(),
		CreatedBy:   testUser,
	}
	items := []*entity.PurchaseOrderLineItem{
		{VariantID: "var-laptop", Quantity: 20},
		{VariantID: "var-mouse", Quantity: 10},
	}
	require.NoError(t, repos.PurchaseOrders.Create(order, items))

	adjustUC := inventory.NewStockAdjustmentUseCase(
		store, &memVariantRepo{store}, &memWarehouseRepo{store}, &memStoreRepo{store}, published, nil,
	)
	return &fixture{
		store:     store,
		published: published,
		receiveUC: inventory.NewReceiveGoodsUseCase(
			store, &memVariantRepo{store}, &memWarehouseRepo{store}, &memStoreRepo{store}, published, nil,
		),
		adjustUC: adjustUC,
		stockTakeUC: inventory.NewStockTakeUseCase(
			store, &memVariantRepo{store}, adjustUC, published, nil,
		),
	}
}

func locationPtrs(loc entity.LocationRef) (*string, *string) {
	if loc.WarehouseID != "" {
		id := loc.WarehouseID
		return &id, nil
	}
	id := loc.StoreID
	return nil, &id
}

// ledgerQty devuelve la cantidad actual del ledger para (variante, ubicación).
func (f *fixture) ledgerQty(t *testing.T, variantID string, loc entity.LocationRef) int64 {
	t.Helper()
	inv, err := (&memInventoryRepo{f.store}).Get(variantID, loc)
	require.NoError(t, err)
	return inv.Quantity
}

// variantQty devuelve el total denormalizado de la variante.
func (f *fixture) variantQty(t *testing.T, variantID string) int64 {
	t.Helper()
	v, err := (&memVariantRepo{f.store}).GetByID(variantID)
	require.NoError(t, err)
	require.NotNil(t, v)
	return v.StockQuantity
}

// orderStatus devuelve el estado actual de la orden.
func (f *fixture) orderStatus(t *testing.T, orderID string) string {
	t.Helper()
	order, err := (&memPurchaseOrderRepo{f.store}).GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	return order.Status
}

// assertConservation verifica que el total de la variante es igual a la suma
// de sus filas del ledger.
func (f *fixture) assertConservation(t *testing.T, variantID string) {
	t.Helper()
	sum, err := (&memInventoryRepo{f.store}).SumByVariant(variantID)
	require.NoError(t, err)
	require.Equal(t, f.variantQty(t, variantID), sum,
		"el total de la variante debe coincidir con la suma del ledger")
}

func warehouseLoc() entity.LocationRef { return entity.LocationRef{WarehouseID: warehouseID} }
func storeLoc() entity.LocationRef     { return entity.LocationRef{StoreID: storeID} }
