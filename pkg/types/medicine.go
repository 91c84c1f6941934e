package types

import "sync"

// Medicine is one inventory item: stock level, the low-stock alert line, a
// replenishment-request flag, and a unit price.
type Medicine struct {
	mu                        sync.Mutex
	medicineID                string
	name                      string
	stock                     int
	lowStockThreshold         int
	isRequestingReplenishment bool
	price                     float64
}

// NewMedicine creates a medicine with the given details.
func NewMedicine(medicineID, name string, stock, lowStockThreshold int, isRequestingReplenishment bool, price float64) *Medicine {
	return &Medicine{
		medicineID:                medicineID,
		name:                      name,
		stock:                     stock,
		lowStockThreshold:         lowStockThreshold,
		isRequestingReplenishment: isRequestingReplenishment,
		price:                     price,
	}
}

// RecordID implements store.Record.
func (m *Medicine) RecordID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.medicineID
}

// SetRecordID implements store.Record.
func (m *Medicine) SetRecordID(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.medicineID = id
}

// Name returns the medicine name.
func (m *Medicine) Name() string {
	return m.name
}

// Stock returns the current stock level.
func (m *Medicine) Stock() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock
}

// SetStock replaces the stock level.
func (m *Medicine) SetStock(stock int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock = stock
}

// DecrementStock reduces the stock level by one. Dispensing may drive stock
// below the low-stock threshold; the core does not block that.
func (m *Medicine) DecrementStock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock--
}

// LowStockThreshold returns the low-stock alert line.
func (m *Medicine) LowStockThreshold() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lowStockThreshold
}

// SetLowStockThreshold replaces the low-stock alert line.
func (m *Medicine) SetLowStockThreshold(threshold int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lowStockThreshold = threshold
}

// IsLowStock reports whether stock has fallen to or below the alert line.
func (m *Medicine) IsLowStock() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock <= m.lowStockThreshold
}

// IsRequestingReplenishment reports whether a replenishment request is open.
func (m *Medicine) IsRequestingReplenishment() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isRequestingReplenishment
}

// SetRequestingReplenishment sets or clears the replenishment-request flag.
func (m *Medicine) SetRequestingReplenishment(requesting bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isRequestingReplenishment = requesting
}

// Replenish adds the given quantity to stock and clears the request flag.
func (m *Medicine) Replenish(quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stock += quantity
	m.isRequestingReplenishment = false
}

// Price returns the unit price.
func (m *Medicine) Price() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.price
}

// SetPrice replaces the unit price.
func (m *Medicine) SetPrice(price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.price = price
}
