package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{hc: Code{}, expect: `""`},
		{hc: MakeCode(1, 0x0), expect: `"0"`},
		{hc: MakeCode(3, 0x5), expect: `"101"`},
		{hc: MakeCode(5, 0x3), expect: `"00011"`},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	hc := Code{}.Append(1).Append(0).Append(1).Append(1)
	expect := MakeCode(4, 0xb)
	if hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
	for i, bit := range []uint{1, 0, 1, 1} {
		if actual := hc.Bit(byte(i)); actual != bit {
			t.Errorf("bit %d: expected %d, got %d", i, bit, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a, b   Code
		expect bool
	}

	testData := [...]testRow{
		{a: Code{}, b: MakeCode(2, 0x2), expect: true},
		{a: MakeCode(1, 0x1), b: MakeCode(2, 0x2), expect: true},
		{a: MakeCode(1, 0x0), b: MakeCode(2, 0x2), expect: false},
		{a: MakeCode(2, 0x2), b: MakeCode(2, 0x2), expect: true},
		{a: MakeCode(2, 0x2), b: MakeCode(1, 0x1), expect: false},
		{a: MakeCode(2, 0x1), b: MakeCode(5, 0x0b), expect: true},
	}
	for _, row := range testData {
		if actual := row.a.IsPrefixOf(row.b); actual != row.expect {
			t.Errorf("%s.IsPrefixOf(%s): expected %v, got %v", row.a, row.b, row.expect, actual)
		}
	}
}

func TestSymbol_String(t *testing.T) {
	if s := Symbol(65).String(); s != "65" {
		t.Errorf("expected 65, got %s", s)
	}
	if s := EOFSymbol.String(); s != "EOF" {
		t.Errorf("expected EOF, got %s", s)
	}
	if s := InvalidSymbol.String(); s != "invalid" {
		t.Errorf("expected invalid, got %s", s)
	}
	if EOFSymbol.IsLiteral() || !EOFSymbol.IsValid() {
		t.Errorf("EOFSymbol must be valid but not a literal")
	}
}

func TestCode_BitOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a bit past the end of the code")
		}
	}()
	MakeCode(3, 0x5).Bit(3)
}
