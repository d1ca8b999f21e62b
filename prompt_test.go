package tilescroll

import (
	"strings"
	"testing"
)

func TestParseCenter(t *testing.T) {
	tests := []struct {
		in       string
		col, row int
		wantErr  bool
	}{
		{"3,4", 3, 4, false},
		{"-10, 22", -10, 22, false},
		{"  7 8 ", 7, 8, false},
		{"0,0", 0, 0, false},
		{"1", 0, 0, true},
		{"1,2,3", 0, 0, true},
		{"a,2", 0, 0, true},
		{"1,b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		col, row, err := ParseCenter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCenter(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("ParseCenter(%q) = (%d,%d), want (%d,%d)", tt.in, col, row, tt.col, tt.row)
		}
	}
}

func TestCenterPromptFlow(t *testing.T) {
	var p centerPrompt
	if p.line() != "" {
		t.Error("closed prompt should render nothing")
	}

	p.open()
	p.typed([]rune("12,x-4"))
	if got := string(p.input); got != "12,-4" {
		t.Errorf("input = %q, want %q", got, "12,-4")
	}
	if !strings.Contains(p.line(), "12,-4_") {
		t.Errorf("line = %q", p.line())
	}

	col, row, ok := p.submit()
	if !ok || col != 12 || row != -4 {
		t.Errorf("submit = (%d,%d,%v), want (12,-4,true)", col, row, ok)
	}
	if p.active {
		t.Error("prompt should close after a valid submit")
	}
}

func TestCenterPromptInvalid(t *testing.T) {
	var p centerPrompt
	p.open()
	p.typed([]rune("5"))
	if _, _, ok := p.submit(); ok {
		t.Fatal("submit of a single number should fail")
	}
	if !p.active || p.err == "" {
		t.Errorf("prompt should stay open with an error, got active=%v err=%q", p.active, p.err)
	}
	if !strings.Contains(p.line(), "want two numbers") {
		t.Errorf("line = %q", p.line())
	}

	p.backspace()
	p.backspace() // no-op on empty input
	if len(p.input) != 0 {
		t.Errorf("input = %q, want empty", string(p.input))
	}

	p.close()
	p.open()
	if p.err != "" {
		t.Error("reopening should clear the previous error")
	}
}
