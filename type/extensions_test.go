package typex

import "testing"

func TestNullableBool(t *testing.T) {
	var nb NullableBool
	if nb.String() != "auto" || nb.Val(true) != true || nb.Val(false) != false {
		t.Errorf("unset value should fall back to the default, got %s", nb.String())
	}

	if err := nb.Set("false"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nb.Val(true) {
		t.Errorf("expected explicit false to win over default")
	}
	if nb.String() != "false" {
		t.Errorf("unexpected string %q", nb.String())
	}

	if err := nb.Set("maybe"); err == nil {
		t.Errorf("expected an error for an invalid value")
	}
}
