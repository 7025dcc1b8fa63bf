package fresh

import "testing"

func TestContextGeneratesDistinctNames(t *testing.T) {
	ctx := New()

	seen := map[string]bool{}
	names := []string{
		ctx.Ident("operator_var"),
		ctx.Cont(),
		ctx.Throwaway(),
		ctx.Ident("operator_var"),
		ctx.Cont(),
	}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate fresh name: %s", n)
		}
		seen[n] = true
	}
}

func TestIdentFormat(t *testing.T) {
	ctx := New()
	if got, want := ctx.Ident("rv"), "$anon_var_rv_0"; got != want {
		t.Errorf("Ident() = %q, want %q", got, want)
	}
	if got, want := ctx.Cont(), "$cont_var_1"; got != want {
		t.Errorf("Cont() = %q, want %q", got, want)
	}
	if got, want := ctx.Throwaway(), "$throwaway_var_2"; got != want {
		t.Errorf("Throwaway() = %q, want %q", got, want)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []string {
		ctx := New()
		return []string{ctx.Ident("a"), ctx.Cont(), ctx.Ident("b"), ctx.Throwaway()}
	}
	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic fresh names: %v vs %v", a, b)
		}
	}
}
