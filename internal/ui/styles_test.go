package ui

import "testing"

func TestGetStyles(t *testing.T) {
	// NoColor must strip all styling so piped output stays clean.
	plain := GetStyles(true)
	if got := plain.Title.Render("Hollowkeep"); got != "Hollowkeep" {
		t.Errorf("no-color title rendered as %q", got)
	}

	styled := GetStyles(false)
	if !styled.Title.GetBold() {
		t.Error("default title should be bold")
	}
}
