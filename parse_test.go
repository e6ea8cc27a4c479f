package housekit

import "testing"

func TestParsers(t *testing.T) {
	if v, err := (IntParser{}).Parse("8450"); err != nil || v.(int64) != 8450 {
		t.Fatalf("int parse: %v, %v", v, err)
	}
	if _, err := (IntParser{}).Parse("84.5"); err == nil {
		t.Fatal("expected int parse error")
	}
	if v, err := (FloatParser{}).Parse("-93.62"); err != nil || v.(float64) != -93.62 {
		t.Fatalf("float parse: %v, %v", v, err)
	}
	if _, err := (FloatParser{}).Parse("RL"); err == nil {
		t.Fatal("expected float parse error")
	}
	if v, err := (StringParser{}).Parse("OldTown"); err != nil || v.(string) != "OldTown" {
		t.Fatalf("string parse: %v, %v", v, err)
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		vals []string
		exp  FieldType
	}{
		{vals: []string{"1", "2", "3"}, exp: Int},
		{vals: []string{"1", "2.5", "3"}, exp: Float},
		{vals: []string{"1", "2.5", "RL"}, exp: String},
		{vals: []string{"-93.62", "42.05"}, exp: Float},
		{vals: []string{}, exp: String},
	}
	for _, test := range tests {
		if got := InferType(test.vals); got != test.exp {
			t.Fatalf("InferType(%v) = %s, want %s", test.vals, got, test.exp)
		}
	}
}
