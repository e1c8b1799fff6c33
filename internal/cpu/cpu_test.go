package cpu

import (
	"errors"
	"testing"
)

type fakeMemory struct {
	ram [0x10000]byte
}

func (m *fakeMemory) Read(address uint16) uint8     { return m.ram[address] }
func (m *fakeMemory) Write(address uint16, v uint8) { m.ram[address] = v }

func newTestCPU() (*CPU, *fakeMemory) {
	mem := &fakeMemory{}
	mem.ram[resetVector] = 0x00
	mem.ram[resetVector+1] = 0x80
	c := New(mem)
	c.Reset()
	return c, mem
}

func TestResetLoadsVectorAndSetsFlags(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want 0x8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP = %#02x, want 0xFD", c.SP)
	}
	if !c.I {
		t.Fatalf("I flag = false after reset, want true")
	}
}

func TestRunNextInstructionLDAImmediate(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA9 // LDA #$42
	mem.ram[0x8001] = 0x42

	cycles, err := c.RunNextInstruction()
	if err != nil {
		t.Fatalf("RunNextInstruction() error = %v", err)
	}
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2", cycles)
	}
	if c.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A)
	}
	if c.PC != 0x8002 {
		t.Fatalf("PC = %#04x, want 0x8002", c.PC)
	}
}

func TestRunNextInstructionPageCrossPenalty(t *testing.T) {
	c, mem := newTestCPU()
	c.X = 0xFF
	mem.ram[0x8000] = 0xBD // LDA $80FF,X -> crosses into $81FE
	mem.ram[0x8001] = 0xFF
	mem.ram[0x8002] = 0x80
	mem.ram[0x81FE] = 0x07

	cycles, err := c.RunNextInstruction()
	if err != nil {
		t.Fatalf("RunNextInstruction() error = %v", err)
	}
	if cycles != 5 {
		t.Fatalf("cycles = %d, want 5 (4 base + 1 page-cross)", cycles)
	}
	if c.A != 0x07 {
		t.Fatalf("A = %#02x, want 0x07", c.A)
	}
}

func TestTriggerNMIPushesPCAndStatus(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[nmiVector] = 0x00
	mem.ram[nmiVector+1] = 0x90
	c.PC = 0x1234
	c.SP = 0xFF

	cycles := c.TriggerNMI()
	if cycles != 7 {
		t.Fatalf("TriggerNMI() = %d, want 7", cycles)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC = %#04x, want 0x9000", c.PC)
	}
	if !c.I {
		t.Fatalf("I flag not set after NMI")
	}
	status := c.pop()
	if status&(1<<bFlagBit) != 0 {
		t.Fatalf("pushed status has B set, want clear")
	}
	if status&(1<<unusedBit) == 0 {
		t.Fatalf("pushed status has unused bit clear, want set")
	}
	pushedPC := c.popWord()
	if pushedPC != 0x1234 {
		t.Fatalf("pushed PC = %#04x, want 0x1234", pushedPC)
	}
}

func TestOAMDMAPauseDoesNotTouchRegisters(t *testing.T) {
	c, _ := newTestCPU()
	c.A, c.X, c.Y, c.PC = 0x11, 0x22, 0x33, 0x8000

	cycles := c.OAMDMAPause()
	if cycles != 513 {
		t.Fatalf("OAMDMAPause() = %d, want 513", cycles)
	}
	if c.A != 0x11 || c.X != 0x22 || c.Y != 0x33 || c.PC != 0x8000 {
		t.Fatalf("OAMDMAPause mutated registers: A=%#02x X=%#02x Y=%#02x PC=%#04x", c.A, c.X, c.Y, c.PC)
	}
}

func TestUndocumentedSupportLevelGating(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA7 // LAX zp (level 2 unofficial)
	mem.ram[0x8001] = 0x10

	c.UndocumentedSupportLevel = 0
	if _, err := c.RunNextInstruction(); !errors.Is(err, ErrUnsupportedOpcode) {
		t.Fatalf("RunNextInstruction() error = %v, want ErrUnsupportedOpcode", err)
	}

	c.PC = 0x8000
	c.UndocumentedSupportLevel = 2
	if _, err := c.RunNextInstruction(); err != nil {
		t.Fatalf("RunNextInstruction() with level 2 error = %v, want nil", err)
	}
}

func TestUndocumentedNOPAllowedAtLevelOne(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x1A // unofficial single-byte NOP

	c.UndocumentedSupportLevel = 1
	if _, err := c.RunNextInstruction(); err != nil {
		t.Fatalf("RunNextInstruction() error = %v, want nil at level 1", err)
	}
}

func TestStackUnderflowException(t *testing.T) {
	c, mem := newTestCPU()
	c.StackUnderflowCausesException = true
	c.SP = 0xFF
	mem.ram[0x8000] = 0x68 // PLA, pops from an already-empty stack

	_, err := c.RunNextInstruction()
	if !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("RunNextInstruction() error = %v, want ErrStackUnderflow", err)
	}
}

func TestStackUnderflowIgnoredByDefault(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0xFF
	mem.ram[0x8000] = 0x68 // PLA

	if _, err := c.RunNextInstruction(); err != nil {
		t.Fatalf("RunNextInstruction() error = %v, want nil (StackUnderflowCausesException defaults false)", err)
	}
}
