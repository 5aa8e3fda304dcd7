package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isAuto bool
		unit   Unit
		amount float32
		str    string
	}

	tests := map[string]tc{
		"Auto":    {value: Auto(), isAuto: true, unit: UnitAuto, amount: 0, str: "auto"},
		"Fixed":   {value: Fixed(100), isAuto: false, unit: UnitFixed, amount: 100, str: "100px"},
		"Percent": {value: Percent(50), isAuto: false, unit: UnitPercent, amount: 50, str: "50%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
			if got := tt.value.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value      Value
		containing Dim
		expected   Dim
	}

	tests := map[string]tc{
		"fixed ignores containing": {value: Fixed(50), containing: Known(100), expected: Known(50)},
		"fixed with unknown":       {value: Fixed(50), containing: Unknown(), expected: Known(50)},
		"fixed fractional":         {value: Fixed(12.5), containing: Known(10), expected: Known(12.5)},
		"percent of known":         {value: Percent(50), containing: Known(80), expected: Known(40)},
		"percent fractional":       {value: Percent(50), containing: Known(15), expected: Known(7.5)},
		"percent over 100":         {value: Percent(150), containing: Known(10), expected: Known(15)},
		"percent of unknown":       {value: Percent(50), containing: Unknown(), expected: Unknown()},
		"auto":                     {value: Auto(), containing: Known(100), expected: Unknown()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.containing); got != tt.expected {
				t.Errorf("Resolve(%v) = %v, want %v", tt.containing, got, tt.expected)
			}
		})
	}
}

func TestValue_ResolveOr(t *testing.T) {
	if got := Auto().ResolveOr(Known(100), 7); got != 7 {
		t.Errorf("Auto().ResolveOr() = %g, want fallback 7", got)
	}
	if got := Percent(10).ResolveOr(Known(100), 7); got != 10 {
		t.Errorf("Percent(10).ResolveOr() = %g, want 10", got)
	}
}

func TestDim(t *testing.T) {
	type tc struct {
		dim  Dim
		sub  float32
		or   float32
		want Dim
		str  string
	}

	tests := map[string]tc{
		"known":          {dim: Known(10), sub: 4, or: 10, want: Known(6), str: "10"},
		"known floored":  {dim: Known(3), sub: 5, or: 3, want: Known(0), str: "3"},
		"unknown":        {dim: Unknown(), sub: 4, or: -1, want: Unknown(), str: "unknown"},
		"known zero":     {dim: Known(0), sub: 0, or: 0, want: Known(0), str: "0"},
		"fractional sub": {dim: Known(2.5), sub: 0.5, or: 2.5, want: Known(2), str: "2.5"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.dim.Sub(tt.sub); got != tt.want {
				t.Errorf("Sub(%g) = %v, want %v", tt.sub, got, tt.want)
			}
			if got := tt.dim.Or(-1); got != tt.or {
				t.Errorf("Or(-1) = %g, want %g", got, tt.or)
			}
			if got := tt.dim.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestAvailableSpace(t *testing.T) {
	type tc struct {
		space    AvailableSpace
		definite bool
		dim      Dim
		sub      AvailableSpace
		str      string
	}

	tests := map[string]tc{
		"definite":    {space: Definite(10), definite: true, dim: Known(10), sub: Definite(7), str: "10"},
		"min-content": {space: MinContent(), definite: false, dim: Unknown(), sub: MinContent(), str: "min-content"},
		"max-content": {space: MaxContent(), definite: false, dim: Unknown(), sub: MaxContent(), str: "max-content"},
		"small":       {space: Definite(2), definite: true, dim: Known(2), sub: Definite(0), str: "2"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.space.IsDefinite(); got != tt.definite {
				t.Errorf("IsDefinite() = %v, want %v", got, tt.definite)
			}
			if got := tt.space.Dim(); got != tt.dim {
				t.Errorf("Dim() = %v, want %v", got, tt.dim)
			}
			if got := tt.space.Sub(3); got != tt.sub {
				t.Errorf("Sub(3) = %v, want %v", got, tt.sub)
			}
			if got := tt.space.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestNodeID_String(t *testing.T) {
	if got := NodeID(0).String(); got != "node(none)" {
		t.Errorf("String() = %q", got)
	}
	id := NodeID(2<<32 | 4)
	if got := id.String(); got != "node(3v2)" {
		t.Errorf("String() = %q, want node(3v2)", got)
	}
}
