package tabledata

import "testing"

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
		str  string
		any  any
	}{
		{"integer", Integer(42), KindInteger, "42", int64(42)},
		{"negative integer", Integer(-7), KindInteger, "-7", int64(-7)},
		{"real", Real(3.14), KindReal, "3.14", float64(3.14)},
		{"real whole", Real(1000), KindReal, "1000", float64(1000)},
		{"text", Text("hello"), KindText, "hello", "hello"},
		{"empty text", Text(""), KindText, "", ""},
		{"zero value", Value{}, KindText, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.v.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.v.Any(); got != tt.any {
				t.Errorf("Any() = %v (%T), want %v (%T)", got, got, tt.any, tt.any)
			}
		})
	}
}

func TestValueFloatWidensIntegers(t *testing.T) {
	if got := Integer(5).Float(); got != 5.0 {
		t.Errorf("Integer(5).Float() = %v, want 5", got)
	}
	if got := Real(2.5).Float(); got != 2.5 {
		t.Errorf("Real(2.5).Float() = %v, want 2.5", got)
	}
	if got := Text("x").Float(); got != 0 {
		t.Errorf("Text(\"x\").Float() = %v, want 0", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInteger, "integer"},
		{KindReal, "real"},
		{KindText, "text"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTableAccessors(t *testing.T) {
	tbl := &Table{
		Name:    "people",
		Headers: []string{"name", "age"},
		Rows: [][]Value{
			{Text("ann"), Integer(34)},
			{Text("bob"), Real(27.5)},
		},
	}

	if got := tbl.NumRows(); got != 2 {
		t.Errorf("NumRows() = %d, want 2", got)
	}
	if got := tbl.NumColumns(); got != 2 {
		t.Errorf("NumColumns() = %d, want 2", got)
	}

	row := tbl.Row(1)
	if row[0].String() != "bob" || row[1].Kind() != KindReal {
		t.Errorf("Row(1) = %v, unexpected contents", row)
	}

	strs := tbl.RowStrings(0)
	if len(strs) != 2 || strs[0] != "ann" || strs[1] != "34" {
		t.Errorf("RowStrings(0) = %v, want [ann 34]", strs)
	}
}
