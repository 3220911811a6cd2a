// core/scanlimits/limits_test.go
package scanlimits

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		limits  ScanLimits
		wantErr bool
	}{
		{"defaults ok", Default(), false},
		{"min_tetrads too low", ScanLimits{MinTetrads: 1, MinScore: 0, MaxGRun: 10, MaxG4Length: 45}, true},
		{"max_g_run below min_tetrads", ScanLimits{MinTetrads: 4, MinScore: 0, MaxGRun: 3, MaxG4Length: 45}, true},
		{"max_g4_length too short", ScanLimits{MinTetrads: 3, MinScore: 0, MaxGRun: 10, MaxG4Length: 11}, true},
		{"boundary ok", ScanLimits{MinTetrads: 3, MinScore: 0, MaxGRun: 10, MaxG4Length: 12}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.limits.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, c.wantErr)
			}
			if err != nil {
				var ci *ConfigInvalid
				if _, ok := err.(*ConfigInvalid); !ok {
					t.Fatalf("expected *ConfigInvalid, got %T", err)
				}
				_ = ci
			}
		})
	}
}

func TestMaxTetradsAllowed(t *testing.T) {
	l := ScanLimits{MinTetrads: 2, MaxGRun: 10, MaxG4Length: 45}
	if got := l.MaxTetradsAllowed(); got != 10 {
		t.Errorf("MaxTetradsAllowed() = %d, want 10 (bounded by max_g_run)", got)
	}
	l.MaxG4Length = 20
	if got := l.MaxTetradsAllowed(); got != 5 {
		t.Errorf("MaxTetradsAllowed() = %d, want 5 (bounded by max_g4_length/4)", got)
	}
}
