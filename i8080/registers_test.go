package i8080

import "testing"

func TestRegisterPairCombinesHighLow(t *testing.T) {
	p := RegisterPair{High: 0x12, Low: 0x34}
	if got := p.Pair(); got != 0x1234 {
		t.Errorf("got %#04x, want 0x1234", got)
	}
}

func TestRegisterPairSetPair(t *testing.T) {
	var p RegisterPair
	p.SetPair(0xABCD)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{p.High, byte(0xAB)},
		{p.Low, byte(0xCD)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}
