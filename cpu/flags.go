package cpu

import (
	"math/bits"
)

// FlagSet is a set of status flags. Each flag uses its PSW bit position.
type FlagSet uint8

const (
	FLAG_CARRY  = FlagSet(1 << 0) // Unsigned carry, or borrow on subtraction.
	FLAG_PARITY = FlagSet(1 << 2) // Even parity of the low 8 bits.
	FLAG_ZERO   = FlagSet(1 << 6) // Low 8 bits are zero.
	FLAG_SIGN   = FlagSet(1 << 7) // Bit 7 set.

	FLAGS_ZSP = FLAG_ZERO | FLAG_SIGN | FLAG_PARITY
	FLAGS_ALL = FLAGS_ZSP | FLAG_CARRY

	// PSW bit 1 always reads as one; bits 3, 4 and 5 read as zero.
	PSW_FIXED = byte(1 << 1)
)

// Has returns true if every flag of other is in the set.
func (set FlagSet) Has(other FlagSet) bool {
	return set&other == other
}

// Flags is the 8080 condition flag state.
type Flags struct {
	Sign   bool
	Zero   bool
	Parity bool
	Carry  bool
}

// Update recomputes the affected flags from a widened result.
// Flags not in affected are left unchanged.
func (fl *Flags) Update(result uint16, affected FlagSet) {
	if affected.Has(FLAG_CARRY) {
		fl.Carry = result > 0xff
	}
	if affected.Has(FLAG_PARITY) {
		fl.Parity = bits.OnesCount8(uint8(result))%2 == 0
	}
	if affected.Has(FLAG_SIGN) {
		fl.Sign = (result & 0x80) != 0
	}
	if affected.Has(FLAG_ZERO) {
		fl.Zero = (result & 0xff) == 0
	}
}

// Set returns the flags that are currently true.
func (fl Flags) Set() (set FlagSet) {
	if fl.Carry {
		set |= FLAG_CARRY
	}
	if fl.Parity {
		set |= FLAG_PARITY
	}
	if fl.Zero {
		set |= FLAG_ZERO
	}
	if fl.Sign {
		set |= FLAG_SIGN
	}
	return
}

// PSW packs the flags into the processor status byte.
func (fl Flags) PSW() byte {
	return byte(fl.Set()) | PSW_FIXED
}

// SetPSW unpacks the processor status byte.
func (fl *Flags) SetPSW(psw byte) {
	set := FlagSet(psw)
	fl.Carry = set.Has(FLAG_CARRY)
	fl.Parity = set.Has(FLAG_PARITY)
	fl.Zero = set.Has(FLAG_ZERO)
	fl.Sign = set.Has(FLAG_SIGN)
}

// Test evaluates a branch condition.
func (fl Flags) Test(cond Cond) bool {
	switch cond {
	case COND_NZ:
		return !fl.Zero
	case COND_Z:
		return fl.Zero
	case COND_NC:
		return !fl.Carry
	case COND_C:
		return fl.Carry
	case COND_PO:
		return !fl.Parity
	case COND_PE:
		return fl.Parity
	case COND_P:
		return !fl.Sign
	case COND_M:
		return fl.Sign
	}
	panic("unknown condition")
}

// String returns the flags as "szpc", upper case when set.
func (fl Flags) String() string {
	out := []byte("szpc")
	for n, set := range []bool{fl.Sign, fl.Zero, fl.Parity, fl.Carry} {
		if set {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}
