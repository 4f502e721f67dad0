package conv

import (
	"testing"
)

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(0); got != 0 {
		t.Errorf("IntToUint32(0) = %d", got)
	}
	if got := IntToUint32(42); got != 42 {
		t.Errorf("IntToUint32(42) = %d", got)
	}
}

func TestIntToUint32_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative input")
		}
	}()
	IntToUint32(-1)
}
