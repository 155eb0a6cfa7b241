package game

import "testing"

func TestParseCommand_VerbAliases(t *testing.T) {
	tests := []struct {
		line string
		verb Verb
		noun string
	}{
		{"look", VerbLook, ""},
		{"look torch", VerbLook, "torch"},
		{"look at Rusty Key", VerbLook, "Rusty Key"},
		{"go north", VerbGo, "north"},
		{"move north", VerbGo, "north"},
		{"walk south", VerbGo, "south"},
		{"take torch", VerbTake, "torch"},
		{"get torch", VerbTake, "torch"},
		{"pickup torch", VerbTake, "torch"},
		{"drop torch", VerbDrop, "torch"},
		{"inventory", VerbInventory, ""},
		{"i", VerbInventory, ""},
		{"help", VerbHelp, ""},
		{"?", VerbHelp, ""},
		{"quit", VerbQuit, ""},
		{"exit", VerbQuit, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, ok := ParseCommand(tt.line)
			if !ok {
				t.Fatal("ParseCommand reported blank line")
			}
			if cmd.Verb != tt.verb {
				t.Errorf("verb = %q, want %q", cmd.Verb, tt.verb)
			}
			if cmd.Noun != tt.noun {
				t.Errorf("noun = %q, want %q", cmd.Noun, tt.noun)
			}
		})
	}
}

func TestParseCommand_BlankLines(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		if _, ok := ParseCommand(line); ok {
			t.Errorf("ParseCommand(%q) ok = true, want false", line)
		}
	}
}

func TestParseCommand_UnknownVerb(t *testing.T) {
	// Given: A verb the parser does not know

	// When: Parsing it
	cmd, ok := ParseCommand("dance wildly")

	// Then: The raw verb is preserved for the error message
	if !ok {
		t.Fatal("non-blank line reported as blank")
	}
	if cmd.Verb != VerbUnknown {
		t.Errorf("verb = %q, want unknown", cmd.Verb)
	}
	if cmd.RawVerb != "dance" {
		t.Errorf("rawVerb = %q", cmd.RawVerb)
	}
}

func TestParseCommand_VerbCaseInsensitive(t *testing.T) {
	cmd, _ := ParseCommand("LOOK")
	if cmd.Verb != VerbLook {
		t.Errorf("verb = %q", cmd.Verb)
	}
}

func TestParseCommand_NounKeepsCase(t *testing.T) {
	cmd, _ := ParseCommand("take Rusty Key")
	if cmd.Noun != "Rusty Key" {
		t.Errorf("noun = %q, want original case preserved", cmd.Noun)
	}
}

func TestParseCommand_CollapsesWhitespace(t *testing.T) {
	cmd, _ := ParseCommand("  take   Rusty    Key  ")
	if cmd.Verb != VerbTake || cmd.Noun != "Rusty Key" {
		t.Errorf("cmd = %+v", cmd)
	}
}
