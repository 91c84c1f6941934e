package inventory

import (
	"strings"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Service manages the medicine inventory: stock levels, low-stock thresholds,
// and the replenishment request/approval handshake between pharmacist and
// administrator.
type Service struct {
	logger    *logger.Logger
	medicines *store.MedicineStore
}

// New creates an inventory service.
func New(medicines *store.MedicineStore, log *logger.Logger) *Service {
	return &Service{logger: log, medicines: medicines}
}

// List returns every medicine in the inventory.
func (s *Service) List() []*types.Medicine {
	return s.medicines.List()
}

// Get returns a medicine by ID.
func (s *Service) Get(medicineID string) (*types.Medicine, error) {
	medicine, ok := s.medicines.Get(medicineID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
	}
	return medicine, nil
}

// FindByName returns the medicine with the given name, case-insensitively,
// or a not found error.
func (s *Service) FindByName(name string) (*types.Medicine, error) {
	for _, medicine := range s.medicines.List() {
		if strings.EqualFold(medicine.Name(), name) {
			return medicine, nil
		}
	}
	return nil, types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
}

// Add inserts a new medicine and returns its assigned ID.
func (s *Service) Add(medicine *types.Medicine) string {
	id := s.medicines.Add(medicine)
	s.logger.WithField("medicine_id", id).Info("Medicine added")
	return id
}

// Remove deletes a medicine from the inventory.
func (s *Service) Remove(medicineID string) error {
	if _, ok := s.medicines.Get(medicineID); !ok {
		return types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
	}
	s.medicines.Remove(medicineID)
	s.logger.WithField("medicine_id", medicineID).Info("Medicine removed")
	return nil
}

// Update applies a partial update to a medicine.
func (s *Service) Update(medicineID string, updates *types.MedicineUpdates) error {
	if ok := s.medicines.Update(medicineID, updates.Apply); !ok {
		return types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
	}
	return nil
}

// SubmitReplenishmentRequest raises the replenishment flag. Only legal while
// stock sits at or below the low-stock threshold.
func (s *Service) SubmitReplenishmentRequest(medicineID string) error {
	medicine, ok := s.medicines.Get(medicineID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
	}

	if !medicine.IsLowStock() {
		return types.NewInvalidStateError(types.ErrCodeStockNotLow, "cannot submit replenishment request: stock is above the low-stock threshold")
	}

	medicine.SetRequestingReplenishment(true)
	s.logger.WithField("medicine_id", medicineID).Info("Replenishment request submitted")
	monitoring.RecordReplenishmentRequest("submitted")
	return nil
}

// ApproveReplenishmentRequest tops the stock up by the low-stock threshold
// and clears the request flag.
func (s *Service) ApproveReplenishmentRequest(medicineID string) error {
	medicine, ok := s.medicines.Get(medicineID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodeMedicineNotFound, "medicine not found")
	}

	medicine.Replenish(medicine.LowStockThreshold())
	s.logger.WithField("medicine_id", medicineID).Info("Replenishment request approved")
	monitoring.RecordReplenishmentRequest("approved")
	return nil
}
