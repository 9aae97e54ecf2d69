package bigdecimal

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"testing"
)

func TestDecimal_ZeroValue(t *testing.T) {
	got := Decimal{}
	if got.Sign() != 0 || got.Scale() != 0 {
		t.Errorf("Decimal{} = %q, want %q", got, "0")
	}
	if got.String() != "0" {
		t.Errorf("Decimal{}.String() = %q, want %q", got.String(), "0")
	}
}

func TestDecimal_Interfaces(t *testing.T) {
	var d any

	d = Decimal{}
	if _, ok := d.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", d)
	}
	if _, ok := d.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", d)
	}

	d = &Decimal{}
	if _, ok := d.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", d)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			coef  int64
			scale int
			want  string
		}{
			{math.MinInt64, 0, "-9223372036854775808"},
			{math.MinInt64, 1, "-922337203685477580.8"},
			{math.MinInt64, 19, "-0.9223372036854775808"},
			{0, 0, "0"},
			{0, 2, "0.00"},
			{1, 0, "1"},
			{1, 1, "0.1"},
			{1, 2, "0.01"},
			{-1, -2, "-100"},
			{179, 2, "1.79"},
			{math.MaxInt64, 0, "9223372036854775807"},
			{math.MaxInt64, 19, "0.9223372036854775807"},
		}
		for _, tt := range tests {
			got, err := New(tt.coef, tt.scale)
			if err != nil {
				t.Errorf("New(%v, %v) failed: %v", tt.coef, tt.scale, err)
				continue
			}
			if got.PlainString() != tt.want {
				t.Errorf("New(%v, %v) = %q, want %q", tt.coef, tt.scale, got.PlainString(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			coef  int64
			scale int
		}{
			"overflow 1":  {1, MaxScale + 1},
			"overflow 2":  {0, math.MaxInt32},
			"underflow 1": {1, MinScale - 1},
			"underflow 2": {-1, math.MinInt32},
		}
		for name, tt := range tests {
			_, err := New(tt.coef, tt.scale)
			if err == nil {
				t.Errorf("%v: New(%v, %v) did not fail", name, tt.coef, tt.scale)
				continue
			}
			if !ErrOverflow.Has(err) && !ErrUnderflow.Has(err) {
				t.Errorf("%v: New(%v, %v) = %v, want scale range error", name, tt.coef, tt.scale, err)
			}
		}
	})
}

func TestNewFromBigInt(t *testing.T) {
	unscaled := big.NewInt(-17900)
	d, err := NewFromBigInt(unscaled, 4)
	if err != nil {
		t.Fatalf("NewFromBigInt(%v, 4) failed: %v", unscaled, err)
	}
	if got := d.PlainString(); got != "-1.7900" {
		t.Errorf("NewFromBigInt(%v, 4) = %q, want %q", unscaled, got, "-1.7900")
	}

	// The argument must be copied, not aliased.
	unscaled.SetInt64(1)
	if got := d.PlainString(); got != "-1.7900" {
		t.Errorf("NewFromBigInt aliased its argument: %q", got)
	}
}

func TestDecimal_UnscaledValue(t *testing.T) {
	tests := []struct {
		d        string
		unscaled string
		scale    int
	}{
		{"1.79", "179", 2},
		{"1.790000", "1790000", 6},
		{"-0.0001", "-1", 4},
		{"0", "0", 0},
		{"1e6", "1", -6},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := d.UnscaledValue().String(); got != tt.unscaled {
			t.Errorf("%q.UnscaledValue() = %v, want %v", tt.d, got, tt.unscaled)
		}
		if got := d.Scale(); got != tt.scale {
			t.Errorf("%q.Scale() = %v, want %v", tt.d, got, tt.scale)
		}
	}

	// The returned integer must be a copy.
	d := MustParse("1.79")
	d.UnscaledValue().SetInt64(42)
	if got := d.UnscaledValue().String(); got != "179" {
		t.Errorf("UnscaledValue leaked internal state: %v", got)
	}
}

func TestDecimal_Precision(t *testing.T) {
	tests := []struct {
		d    string
		want int
	}{
		{"0", 1},
		{"1", 1},
		{"-9", 1},
		{"10", 2},
		{"1.79", 3},
		{"0.0001", 1},
		{"123456789012345678901234567890", 30},
	}
	for _, tt := range tests {
		if got := MustParse(tt.d).Precision(); got != tt.want {
			t.Errorf("%q.Precision() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Sign(t *testing.T) {
	tests := []struct {
		d                   string
		sign                int
		isPos, isNeg, isInt bool
	}{
		{"-1.79", -1, false, true, false},
		{"0", 0, false, false, true},
		{"0.000", 0, false, false, true},
		{"14", 1, true, false, true},
		{"14.00", 1, true, false, true},
		{"1e6", 1, true, false, true},
		{"0.5", 1, true, false, false},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := d.Sign(); got != tt.sign {
			t.Errorf("%q.Sign() = %v, want %v", tt.d, got, tt.sign)
		}
		if got := d.IsPos(); got != tt.isPos {
			t.Errorf("%q.IsPos() = %v, want %v", tt.d, got, tt.isPos)
		}
		if got := d.IsNeg(); got != tt.isNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", tt.d, got, tt.isNeg)
		}
		if got := d.IsInt(); got != tt.isInt {
			t.Errorf("%q.IsInt() = %v, want %v", tt.d, got, tt.isInt)
		}
	}
}

func TestDecimal_NegAbsCopySign(t *testing.T) {
	tests := []struct {
		d, neg, abs string
	}{
		{"1.79", "-1.79", "1.79"},
		{"-1.79", "1.79", "1.79"},
		{"0", "0", "0"},
		{"-14", "14", "14"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := d.Neg(); got.CmpTotal(MustParse(tt.neg)) != 0 {
			t.Errorf("%q.Neg() = %q, want %q", tt.d, got, tt.neg)
		}
		if got := d.Abs(); got.CmpTotal(MustParse(tt.abs)) != 0 {
			t.Errorf("%q.Abs() = %q, want %q", tt.d, got, tt.abs)
		}
	}

	d := MustParse("1.79")
	if got := d.CopySign(MustParse("-5")); !got.Equal(MustParse("-1.79")) {
		t.Errorf("CopySign onto negative = %q, want %q", got, "-1.79")
	}
	if got := d.CopySign(Zero); !got.Equal(d) {
		t.Errorf("CopySign onto zero = %q, want %q", got, d)
	}
}

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"1.79", "1.79", 0},
		{"1.79", "1.790000", 0},
		{"1.790000", "1.79", 0},
		{"0", "0.000", 0},
		{"0", "-0.000", 0},
		{"2", "1.999999", 1},
		{"-2", "1", -1},
		{"-2", "-3", 1},
		{"1e3", "1000", 0},
		{"0.0000000001", "0", 1},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.Cmp(e); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.d, tt.e, got, tt.want)
		}
		if got := d.Equal(e); got != (tt.want == 0) {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.d, tt.e, got, tt.want == 0)
		}
		if got := d.Less(e); got != (tt.want < 0) {
			t.Errorf("%q.Less(%q) = %v, want %v", tt.d, tt.e, got, tt.want < 0)
		}
	}
}

func TestDecimal_CmpTotal(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"1.79", "1.79", 0},
		{"1.79", "1.790000", 1},
		{"1.790000", "1.79", -1},
		{"2", "1.79", 1},
		{"-2", "1.79", -1},
	}
	for _, tt := range tests {
		if got := MustParse(tt.d).CmpTotal(MustParse(tt.e)); got != tt.want {
			t.Errorf("%q.CmpTotal(%q) = %v, want %v", tt.d, tt.e, got, tt.want)
		}
	}
}

// Equality must ignore representation, while the stored pair preserves it.
func TestDecimal_EqualIgnoresRepresentation(t *testing.T) {
	d := MustParse("1.79")
	e := MustParse("1.790000")
	if !d.Equal(e) {
		t.Errorf("%q and %q must be numerically equal", d, e)
	}
	if d.UnscaledValue().Cmp(e.UnscaledValue()) == 0 {
		t.Errorf("%q and %q must keep distinct coefficients", d, e)
	}
	if d.Scale() == e.Scale() {
		t.Errorf("%q and %q must keep distinct scales", d, e)
	}
}

func TestDecimal_MaxMin(t *testing.T) {
	tests := []struct {
		d, e, max, min string
	}{
		{"1.79", "0.5", "1.79", "0.5"},
		{"-1.79", "0.5", "0.5", "-1.79"},
		{"1.79", "1.790000", "1.79", "1.790000"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.Max(e); got.CmpTotal(MustParse(tt.max)) != 0 {
			t.Errorf("%q.Max(%q) = %q, want %q", tt.d, tt.e, got, tt.max)
		}
		if got := d.Min(e); got.CmpTotal(MustParse(tt.min)) != 0 {
			t.Errorf("%q.Min(%q) = %q, want %q", tt.d, tt.e, got, tt.min)
		}
	}
}

func TestDecimal_ULP(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"1.79", "0.01"},
		{"14", "1"},
		{"1e3", "1e3"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.d).ULP(); got.CmpTotal(MustParse(tt.want)) != 0 {
			t.Errorf("%q.ULP() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			want int64
		}{
			{"0", 0},
			{"1.79", 1},
			{"-1.79", -1},
			{"1.99", 1},
			{"-0.5", 0},
			{"1e3", 1000},
			{"9223372036854775807", math.MaxInt64},
			{"-9223372036854775808", math.MinInt64},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.d).Int64()
			if err != nil {
				t.Errorf("%q.Int64() failed: %v", tt.d, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Int64() = %v, want %v", tt.d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"9223372036854775808", "-9223372036854775809", "1e30"} {
			_, err := MustParse(s).Int64()
			if !ErrConversionOverflow.Has(err) {
				t.Errorf("%q.Int64() = %v, want conversion overflow", s, err)
			}
		}
	})
}

func TestDecimal_Int32(t *testing.T) {
	got, err := MustParse("-2147483648").Int32()
	if err != nil || got != math.MinInt32 {
		t.Errorf("Int32() = %v, %v, want %v", got, err, math.MinInt32)
	}
	if _, err := MustParse("2147483648").Int32(); !ErrConversionOverflow.Has(err) {
		t.Errorf("Int32() = %v, want conversion overflow", err)
	}
}

func TestDecimal_Uint64(t *testing.T) {
	got, err := MustParse("18446744073709551615").Uint64()
	if err != nil || got != math.MaxUint64 {
		t.Errorf("Uint64() = %v, %v, want %v", got, err, uint64(math.MaxUint64))
	}
	for _, s := range []string{"-1", "18446744073709551616"} {
		if _, err := MustParse(s).Uint64(); !ErrConversionOverflow.Has(err) {
			t.Errorf("%q.Uint64() = %v, want conversion overflow", s, err)
		}
	}
}

func TestDecimal_Text(t *testing.T) {
	d := MustParse("-1.790")
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	var e Decimal
	if err := e.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if d.CmpTotal(e) != 0 {
		t.Errorf("text round-trip changed %q to %q", d, e)
	}
}

func TestNewFromIntegers(t *testing.T) {
	if got := NewFromInt64(-14); got.String() != "-14" {
		t.Errorf("NewFromInt64(-14) = %q", got)
	}
	if got := NewFromInt32(math.MinInt32); got.String() != "-2147483648" {
		t.Errorf("NewFromInt32(min) = %q", got)
	}
	if got := NewFromUint64(math.MaxUint64); got.String() != "18446744073709551615" {
		t.Errorf("NewFromUint64(max) = %q", got)
	}
	if got := NewFromUint32(math.MaxUint32); got.String() != "4294967295" {
		t.Errorf("NewFromUint32(max) = %q", got)
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{MinusOne, "-1"},
		{Zero, "0"},
		{One, "1"},
		{Two, "2"},
		{Ten, "10"},
		{Half, "0.5"},
		{OneTenth, "0.1"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("constant = %q, want %q", got, tt.want)
		}
	}
}
