package client

import (
	"errors"
	"testing"
	"time"
)

func TestSmartBinConnect(t *testing.T) {
	bin := NewSmartBin()
	if bin.Connected() {
		t.Fatal("new panel must start disconnected")
	}
	if _, err := bin.Status(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v", err)
	}

	status := bin.Connect("8842")
	if status.BinID != "8842" || status.FillLevel != 78 || status.Battery != 92 || status.Temperature != 24 {
		t.Errorf("status = %+v", status)
	}
	if status.LastSync != "Just now" {
		t.Errorf("lastSync = %q", status.LastSync)
	}
	if !bin.FillAlert() {
		t.Error("78% fill must trip the alert")
	}

	// The alert fires strictly above 75.
	bin.status.FillLevel = 75
	if bin.FillAlert() {
		t.Error("75% fill must not alert")
	}
	bin.status.FillLevel = 76
	if !bin.FillAlert() {
		t.Error("76% fill must alert")
	}

	bin.Disconnect()
	if bin.Connected() {
		t.Error("disconnect must clear the pairing")
	}
}

func TestSmartBinControls(t *testing.T) {
	bin := NewSmartBin()
	if _, err := bin.ToggleLock(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v", err)
	}

	bin.Connect("8845")
	locked, err := bin.ToggleLock()
	if err != nil || !locked {
		t.Errorf("lock = %v, %v", locked, err)
	}
	odor, err := bin.ToggleOdorControl()
	if err != nil || odor {
		t.Errorf("odor control starts on, toggle = %v, %v", odor, err)
	}
	maint, err := bin.ToggleMaintenance()
	if err != nil || !maint {
		t.Errorf("maintenance = %v, %v", maint, err)
	}
}

func TestSmartBinBilling(t *testing.T) {
	bin := NewSmartBin()
	bin.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	bin.Connect("8842")

	if got := bin.BillAmountXOF(); got != PlanMonthlyPriceXOF {
		t.Errorf("monthly bill = %d", got)
	}
	due, pending := bin.BillDue()
	if !pending {
		t.Error("fresh pairing must have a pending bill")
	}
	if want := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC); !due.Equal(want) {
		t.Errorf("due = %v, want %v", due, want)
	}

	bin.SetPlan(PlanWeekly)
	if got := bin.BillAmountXOF(); got != PlanWeeklyPriceXOF {
		t.Errorf("weekly bill = %d", got)
	}

	if err := bin.PayBill(); err != nil {
		t.Fatal(err)
	}
	if _, pending := bin.BillDue(); pending {
		t.Error("paid bill must not stay pending")
	}

	bin.SetPlan("yearly")
	if got := bin.Plan(); got != PlanWeekly {
		t.Errorf("unknown plan must be ignored, got %q", got)
	}
}

func TestMarkersFor(t *testing.T) {
	for _, m := range MarkersFor(RoleUser) {
		if m.Kind == MarkerCollection {
			t.Errorf("resident map must not show collection points: %+v", m)
		}
	}
	var bins, collections int
	for _, m := range MarkersFor(RoleCollector) {
		switch m.Kind {
		case MarkerMarket:
			t.Errorf("collector map must not show markets: %+v", m)
		case MarkerBin:
			bins++
		case MarkerCollection:
			collections++
		}
	}
	if bins != 2 || collections != 2 {
		t.Errorf("collector map: bins=%d collections=%d", bins, collections)
	}
}
