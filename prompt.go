package tilescroll

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCenter parses "x,z" (optionally space separated) into tile column and
// row.
func ParseCenter(s string) (col, row int, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("parse center %q: want two numbers", s)
	}
	col, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse center x: %w", err)
	}
	row, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse center z: %w", err)
	}
	return col, row, nil
}

// centerPrompt is the in-window text entry behind the C key.
type centerPrompt struct {
	active bool
	input  []rune
	err    string
}

func (p *centerPrompt) open() {
	p.active = true
	p.input = p.input[:0]
	p.err = ""
}

func (p *centerPrompt) close() {
	p.active = false
	p.input = p.input[:0]
	p.err = ""
}

// typed appends accepted runes: digits, sign, comma and space.
func (p *centerPrompt) typed(runes []rune) {
	for _, r := range runes {
		if (r >= '0' && r <= '9') || r == '-' || r == ',' || r == ' ' {
			p.input = append(p.input, r)
		}
	}
}

func (p *centerPrompt) backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// submit parses the input. On failure the prompt stays open with err set.
func (p *centerPrompt) submit() (col, row int, ok bool) {
	col, row, err := ParseCenter(string(p.input))
	if err != nil {
		p.err = err.Error()
		return 0, 0, false
	}
	p.close()
	return col, row, true
}

// line renders the prompt for the HUD.
func (p *centerPrompt) line() string {
	if !p.active {
		return ""
	}
	s := "Center at x,z: " + string(p.input) + "_"
	if p.err != "" {
		s += "  (" + p.err + ")"
	}
	return s
}
