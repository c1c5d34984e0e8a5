package repositories

import (
	"sync"

	"gorm.io/gorm"
)

// UnitOfWork hands out repositories bound to one transaction. Every
// read and write made through them commits or rolls back together.
type UnitOfWork interface {
	Products() ProductRepository
	Orders() OrderRepository
	Carts() CartRepository
}

// TxManager runs a function inside a single transaction. If fn
// returns an error the transaction is rolled back and the error is
// returned unchanged; otherwise the transaction commits.
type TxManager interface {
	RunInTx(fn func(uow UnitOfWork) error) error
}

// GormTxManager is a TxManager backed by GORM transactions.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new instance of GormTxManager.
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{
		db: db,
	}
}

// RunInTx executes fn inside one database transaction.
func (m *GormTxManager) RunInTx(fn func(uow UnitOfWork) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormUnitOfWork{tx: tx})
	})
}

// gormUnitOfWork builds repositories bound to the open transaction.
type gormUnitOfWork struct {
	tx *gorm.DB
}

func (u *gormUnitOfWork) Products() ProductRepository {
	return NewGORMProductRepository(u.tx)
}

func (u *gormUnitOfWork) Orders() OrderRepository {
	return NewGORMOrderRepository(u.tx)
}

func (u *gormUnitOfWork) Carts() CartRepository {
	return NewGORMCartRepository(u.tx)
}

// MemoryTxManager is an in-memory TxManager over the mock
// repositories. It serializes transactions on a mutex and restores a
// snapshot of all three stores when fn fails, so abort semantics
// match the database-backed implementation.
type MemoryTxManager struct {
	products *MockProductRepository
	orders   *MockOrderRepository
	carts    *MockCartRepository
	mu       sync.Mutex
}

// NewMemoryTxManager creates a TxManager over the given mock repositories.
func NewMemoryTxManager(products *MockProductRepository, orders *MockOrderRepository, carts *MockCartRepository) *MemoryTxManager {
	return &MemoryTxManager{
		products: products,
		orders:   orders,
		carts:    carts,
	}
}

// RunInTx executes fn against the shared stores, rolling back to a
// snapshot on error. The manager's mutex is held for the whole call,
// so a rollback can never clobber another transaction's writes.
func (m *MemoryTxManager) RunInTx(fn func(uow UnitOfWork) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	productSnap := snapshotMap(m.products.products, &m.products.mu)
	orderSnap := snapshotMap(m.orders.orders, &m.orders.mu)
	cartSnap := snapshotMap(m.carts.items, &m.carts.mu)

	err := fn(&memoryUnitOfWork{m: m})
	if err != nil {
		restoreMap(m.products.products, productSnap, &m.products.mu)
		restoreMap(m.orders.orders, orderSnap, &m.orders.mu)
		restoreMap(m.carts.items, cartSnap, &m.carts.mu)
		return err
	}
	return nil
}

type memoryUnitOfWork struct {
	m *MemoryTxManager
}

func (u *memoryUnitOfWork) Products() ProductRepository { return u.m.products }
func (u *memoryUnitOfWork) Orders() OrderRepository     { return u.m.orders }
func (u *memoryUnitOfWork) Carts() CartRepository       { return u.m.carts }

type rwLocker interface {
	Lock()
	Unlock()
}

func snapshotMap[V any](src map[string]V, mu rwLocker) map[string]V {
	mu.Lock()
	defer mu.Unlock()
	snap := make(map[string]V, len(src))
	for k, v := range src {
		snap[k] = v
	}
	return snap
}

func restoreMap[V any](dst, snap map[string]V, mu rwLocker) {
	mu.Lock()
	defer mu.Unlock()
	for k := range dst {
		delete(dst, k)
	}
	for k, v := range snap {
		dst[k] = v
	}
}
