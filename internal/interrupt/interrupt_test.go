package interrupt

import "testing"

func TestAnyActive(t *testing.T) {
	b := New()
	if b.AnyActive() {
		t.Fatalf("AnyActive() = true on a fresh bus")
	}
	b.RaiseOAMDMAStall()
	if !b.AnyActive() || !b.OAMDMAStallActive() {
		t.Fatalf("OAM-DMA stall not observed as active")
	}
	b.ResetOAMDMAStall()
	if b.AnyActive() {
		t.Fatalf("AnyActive() = true after reset")
	}
}

func TestNMICoalesces(t *testing.T) {
	b := New()
	b.RaiseNMI()
	b.RaiseNMI()
	if !b.NMIActive() {
		t.Fatalf("NMIActive() = false after two raises")
	}
	b.ResetNMI()
	if b.NMIActive() {
		t.Fatalf("NMIActive() = true after single reset")
	}
}

func TestIRQReportsActive(t *testing.T) {
	b := New()
	b.RaiseIRQ()
	if !b.IRQActive() || !b.AnyActive() {
		t.Fatalf("IRQ flag not observed as active")
	}
}
