package command

import "testing"

func TestTable_Match(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantOK     bool
		wantAction Action
	}{
		{name: "substring inside sentence", transcript: "please go to the next slide", wantOK: true, wantAction: ActionMoveRight},
		{name: "exact trigger", transcript: "previous", wantOK: true, wantAction: ActionMoveLeft},
		{name: "slideshow", transcript: "start the slideshow now", wantOK: true, wantAction: ActionSlideshow},
		{name: "exit", transcript: "exit", wantOK: true, wantAction: ActionQuit},
		{name: "no trigger", transcript: "i don't know what to say", wantOK: false, wantAction: ActionNone},
		{name: "empty transcript", transcript: "", wantOK: false, wantAction: ActionNone},
		{name: "trigger inside longer word", transcript: "nextdoor", wantOK: true, wantAction: ActionMoveRight},
		{name: "slide show with a space is not slideshow", transcript: "slide show", wantOK: false, wantAction: ActionNone},
	}

	table := DefaultTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Match(tt.transcript)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.transcript, ok, tt.wantOK)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Match(%q) action = %v, want %v", tt.transcript, got.Action, tt.wantAction)
			}
		})
	}
}

func TestTable_MatchFirstInTableOrderWins(t *testing.T) {
	table := DefaultTable()

	// "exit" встречается в тексте раньше, но "next" раньше в таблице
	got, ok := table.Match("exit and go to the next one")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Action != ActionMoveRight {
		t.Errorf("action = %v, want %v", got.Action, ActionMoveRight)
	}

	reordered := Table{
		{Trigger: "exit", Action: ActionQuit},
		{Trigger: "next", Action: ActionMoveRight},
	}
	got, _ = reordered.Match("exit and go to the next one")
	if got.Action != ActionQuit {
		t.Errorf("reordered action = %v, want %v", got.Action, ActionQuit)
	}
}

func TestTable_MatchSkipsEmptyTrigger(t *testing.T) {
	table := Table{
		{Trigger: "", Action: ActionQuit},
		{Trigger: "next", Action: ActionMoveRight},
	}
	got, ok := table.Match("anything at all")
	if ok {
		t.Fatalf("unexpected match %+v", got)
	}
}

func TestAction_String(t *testing.T) {
	if ActionSlideshow.String() != "special-combo" {
		t.Errorf("ActionSlideshow.String() = %q", ActionSlideshow.String())
	}
	if Action(42).String() != "none" {
		t.Errorf("unknown action String() = %q", Action(42).String())
	}
}
