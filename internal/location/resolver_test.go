package location

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		zip       string
		wantFound bool
		wantCity  string
		wantState string
	}{
		{"beverly hills", "90210", true, "Beverly Hills", "CA"},
		{"manhattan", "10001", true, "New York", "NY"},
		{"seattle", "98101", true, "Seattle", "WA"},
		{"anchorage", "99501", true, "Anchorage", "AK"},
		{"too short", "9021", false, "", ""},
		{"too long", "902100", false, "", ""},
		{"non-digit", "9021a", false, "", ""},
		{"empty", "", false, "", ""},
		{"unknown prefix", "00100", false, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loc, found := Resolve(tc.zip)
			if found != tc.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tc.zip, found, tc.wantFound)
			}
			if !found {
				return
			}
			if loc.City != tc.wantCity || loc.State != tc.wantState {
				t.Errorf("Resolve(%q) = %s, %s; want %s, %s", tc.zip, loc.City, loc.State, tc.wantCity, tc.wantState)
			}
		})
	}
}

func TestTableCoversEveryState(t *testing.T) {
	states := make(map[string]bool)
	for _, loc := range prefixTable {
		states[loc.State] = true
	}
	// 50 states + DC; PR is included as a bonus
	if len(states) < 51 {
		t.Errorf("prefix table covers %d states, want at least 51", len(states))
	}
}

func TestValidZip(t *testing.T) {
	if !ValidZip("12345") {
		t.Error("expected 12345 to be valid")
	}
	for _, z := range []string{"1234", "123456", "12a45", "", "12 45"} {
		if ValidZip(z) {
			t.Errorf("expected %q to be invalid", z)
		}
	}
}
