package client

import (
	"errors"
	"sync"
	"time"
)

// Subscription plans for the smart bin service, priced in XOF.
const (
	PlanMonthly = "monthly"
	PlanWeekly  = "weekly"

	PlanMonthlyPriceXOF = 5000
	PlanWeeklyPriceXOF  = 1500

	// FillAlertThreshold is the fill percentage above which the panel
	// shows a collection alert.
	FillAlertThreshold = 75
)

var ErrNotConnected = errors.New("no smart bin connected")

// BinStatus is the telemetry snapshot of a paired bin.
type BinStatus struct {
	BinID       string
	FillLevel   int // percent
	Battery     int // percent
	Temperature int // celsius
	LastSync    string
	Locked      bool
	OdorControl bool
	Maintenance bool
}

// SmartBin simulates the IoT bin pairing panel. Pairing always succeeds
// and reports a fixed telemetry snapshot; there is no real device link.
type SmartBin struct {
	mu  sync.Mutex
	now func() time.Time

	connected bool
	status    BinStatus
	plan      string
	billPaid  bool
	dueDate   time.Time
}

func NewSmartBin() *SmartBin {
	return &SmartBin{now: time.Now, plan: PlanMonthly}
}

// Connect pairs the panel with a bin. The snapshot is the canned demo
// telemetry; the bill due date is set five days out.
func (b *SmartBin) Connect(binID string) BinStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = true
	b.status = BinStatus{
		BinID:       binID,
		FillLevel:   78,
		Battery:     92,
		Temperature: 24,
		LastSync:    "Just now",
		OdorControl: true,
	}
	b.billPaid = false
	b.dueDate = b.now().AddDate(0, 0, 5)
	return b.status
}

func (b *SmartBin) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = false
	b.status = BinStatus{}
}

func (b *SmartBin) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected
}

func (b *SmartBin) Status() (BinStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return BinStatus{}, ErrNotConnected
	}
	return b.status, nil
}

// FillAlert reports whether the bin is full enough to need collection.
func (b *SmartBin) FillAlert() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected && b.status.FillLevel > FillAlertThreshold
}

// --- controls ---

func (b *SmartBin) ToggleLock() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return false, ErrNotConnected
	}
	b.status.Locked = !b.status.Locked
	return b.status.Locked, nil
}

func (b *SmartBin) ToggleOdorControl() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return false, ErrNotConnected
	}
	b.status.OdorControl = !b.status.OdorControl
	return b.status.OdorControl, nil
}

func (b *SmartBin) ToggleMaintenance() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return false, ErrNotConnected
	}
	b.status.Maintenance = !b.status.Maintenance
	return b.status.Maintenance, nil
}

// --- subscription ---

// SetPlan switches between the monthly and weekly plan. An unpaid bill
// keeps its due date; only the price changes.
func (b *SmartBin) SetPlan(plan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if plan == PlanMonthly || plan == PlanWeekly {
		b.plan = plan
	}
}

func (b *SmartBin) Plan() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.plan
}

// BillAmountXOF is the price of the current plan.
func (b *SmartBin) BillAmountXOF() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.plan == PlanWeekly {
		return PlanWeeklyPriceXOF
	}
	return PlanMonthlyPriceXOF
}

func (b *SmartBin) BillDue() (time.Time, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dueDate, b.connected && !b.billPaid
}

// PayBill marks the current bill paid and rolls the due date forward by
// the plan period.
func (b *SmartBin) PayBill() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return ErrNotConnected
	}
	b.billPaid = true
	if b.plan == PlanWeekly {
		b.dueDate = b.dueDate.AddDate(0, 0, 7)
	} else {
		b.dueDate = b.dueDate.AddDate(0, 1, 0)
	}
	return nil
}
