package billing

import (
	"fmt"
	"strings"

	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Bill is a pure read over an outcome record: the subtotal covers every
// prescription, the due amount only those still PENDING. Computing a bill
// never mutates the record or its prescriptions.
type Bill struct {
	record *types.AppointmentOutcomeRecord
}

// NewBill creates a bill for the outcome record.
func NewBill(record *types.AppointmentOutcomeRecord) *Bill {
	return &Bill{record: record}
}

// Date returns the appointment day the bill covers.
func (b *Bill) Date() types.Date {
	return b.record.Date()
}

// ServiceType returns the billed service.
func (b *Bill) ServiceType() string {
	return b.record.ServiceType()
}

// Subtotal sums the medicine prices of every prescription.
func (b *Bill) Subtotal() float64 {
	var subtotal float64
	for _, p := range b.record.Prescriptions() {
		subtotal += p.Medicine().Price()
	}
	return subtotal
}

// Due sums the medicine prices of prescriptions still PENDING. Dispensed
// medications are excluded.
func (b *Bill) Due() float64 {
	var due float64
	for _, p := range b.record.Prescriptions() {
		if p.Status() == types.PrescriptionPending {
			due += p.Medicine().Price()
		}
	}
	return due
}

// Snapshot returns a JSON view of the bill.
func (b *Bill) Snapshot() View {
	prescriptions := b.record.Prescriptions()
	lines := make([]types.PrescriptionView, len(prescriptions))
	for i, p := range prescriptions {
		lines[i] = p.Snapshot()
	}
	return View{
		Date:          b.Date(),
		ServiceType:   b.ServiceType(),
		Prescriptions: lines,
		Subtotal:      b.Subtotal(),
		Due:           b.Due(),
	}
}

// View is the JSON shape of a bill.
type View struct {
	Date          types.Date               `json:"date"`
	ServiceType   string                   `json:"service_type"`
	Prescriptions []types.PrescriptionView `json:"prescriptions"`
	Subtotal      float64                  `json:"subtotal"`
	Due           float64                  `json:"due"`
}

// String renders a printable bill.
func (b *Bill) String() string {
	var sb strings.Builder
	sb.WriteString("======================= Bill =======================\n")
	fmt.Fprintf(&sb, "Date: %s\n", b.Date())
	fmt.Fprintf(&sb, "Service Type: %s\n", b.ServiceType())
	sb.WriteString("Prescriptions:\n")
	prescriptions := b.record.Prescriptions()
	if len(prescriptions) == 0 {
		sb.WriteString("    (Empty)\n")
	}
	for _, p := range prescriptions {
		fmt.Fprintf(&sb, "  - %s\t$%.2f\n", p.Medicine().Name(), p.Medicine().Price())
	}
	fmt.Fprintf(&sb, "Subtotal: $%.2f\n", b.Subtotal())
	fmt.Fprintf(&sb, "Due: $%.2f\n", b.Due())
	sb.WriteString("====================================================\n")
	sb.WriteString("Notes: Dispensed medications are excluded from the due amount.\n")
	sb.WriteString("====================================================\n")
	return sb.String()
}
