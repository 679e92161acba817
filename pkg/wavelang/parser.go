// Package wavelang compiles textual waveform specifications such as
// "sine(440)" or "noise(100).adshr(0.1,0.2,0.5,0.3,0.4).looped()" into
// generator graphs from the wave package.
//
// The grammar is strict: no whitespace between tokens, no exponent
// notation in numbers, and the whole input must be consumed. A base
// waveform is parsed first and zero or more suffixes are then folded
// onto it left to right.
//
//	expr   := base (suffix)*
//	base   := number | "sine("expr")" | "noise("expr")"
//	        | "pulse("expr","expr")" | "triangle("expr","expr")"
//	        | "add("expr","expr")" | "mul("expr","expr")"
//	        | "slide("number","number","number")"
//	suffix := ".add("expr")" | ".mul("expr")" | ".delayed("number")"
//	        | ".adshr("number","number","number","number","number")"
//	        | ".looped()"
//	number := ["-"] digits ["." digits]
package wavelang

import (
	"fmt"
	"strconv"
	"strings"

	"Wavesynth/pkg/wave"
)

// ParseError reports where a waveform specification stopped matching the
// grammar. Offset is a byte offset into the input.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wavelang: %s at offset %d", e.Msg, e.Offset)
}

// Parse compiles spec into a waveform. On any syntactic mismatch, or if
// spec is not fully consumed, Parse returns a *ParseError and no graph.
func Parse(spec string) (wave.Wave, error) {
	p := &parser{input: spec}
	w, err := p.parseExpr()
	if err != nil {
		return wave.Wave{}, err
	}
	if p.pos != len(p.input) {
		return wave.Wave{}, p.errorf("unexpected trailing input %q", p.input[p.pos:])
	}
	return w, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// eat consumes s if the remaining input starts with it.
func (p *parser) eat(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return nil
	}
	return p.errorf("expected %q", string(c))
}

func (p *parser) parseExpr() (wave.Wave, error) {
	w, err := p.parseBase()
	if err != nil {
		return wave.Wave{}, err
	}
	for p.pos < len(p.input) && p.input[p.pos] == '.' {
		w, err = p.parseSuffix(w)
		if err != nil {
			return wave.Wave{}, err
		}
	}
	return w, nil
}

func (p *parser) parseBase() (wave.Wave, error) {
	switch {
	case p.eat("sine("):
		freq, err := p.parseArgs1()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Sine(freq), nil
	case p.eat("noise("):
		freq, err := p.parseArgs1()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Noise(freq), nil
	case p.eat("pulse("):
		freq, duty, err := p.parseArgs2()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Pulse(freq, duty), nil
	case p.eat("triangle("):
		freq, duty, err := p.parseArgs2()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Triangle(freq, duty), nil
	case p.eat("add("):
		w1, w2, err := p.parseArgs2()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Add(w1, w2), nil
	case p.eat("mul("):
		w1, w2, err := p.parseArgs2()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Mul(w1, w2), nil
	case p.eat("slide("):
		nums, err := p.parseNumberArgs(3)
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Slide(nums[0], nums[1], nums[2]), nil
	}
	v, err := p.parseNumber()
	if err != nil {
		return wave.Wave{}, err
	}
	return wave.Const(v), nil
}

func (p *parser) parseSuffix(w wave.Wave) (wave.Wave, error) {
	switch {
	case p.eat(".add("):
		other, err := p.parseArgs1()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Add(w, other), nil
	case p.eat(".mul("):
		other, err := p.parseArgs1()
		if err != nil {
			return wave.Wave{}, err
		}
		return wave.Mul(w, other), nil
	case p.eat(".adshr("):
		nums, err := p.parseNumberArgs(5)
		if err != nil {
			return wave.Wave{}, err
		}
		return w.ADSHR(nums[0], nums[1], nums[2], nums[3], nums[4]), nil
	case p.eat(".delayed("):
		nums, err := p.parseNumberArgs(1)
		if err != nil {
			return wave.Wave{}, err
		}
		return w.Delayed(nums[0]), nil
	case p.eat(".looped()"):
		return w.Looped(), nil
	}
	return wave.Wave{}, p.errorf("unknown suffix")
}

// parseArgs1 parses a single expression argument and the closing paren.
func (p *parser) parseArgs1() (wave.Wave, error) {
	w, err := p.parseExpr()
	if err != nil {
		return wave.Wave{}, err
	}
	if err := p.expect(')'); err != nil {
		return wave.Wave{}, err
	}
	return w, nil
}

// parseArgs2 parses two comma-separated expression arguments and the
// closing paren.
func (p *parser) parseArgs2() (wave.Wave, wave.Wave, error) {
	w1, err := p.parseExpr()
	if err != nil {
		return wave.Wave{}, wave.Wave{}, err
	}
	if err := p.expect(','); err != nil {
		return wave.Wave{}, wave.Wave{}, err
	}
	w2, err := p.parseExpr()
	if err != nil {
		return wave.Wave{}, wave.Wave{}, err
	}
	if err := p.expect(')'); err != nil {
		return wave.Wave{}, wave.Wave{}, err
	}
	return w1, w2, nil
}

// parseNumberArgs parses n comma-separated number literals and the
// closing paren.
func (p *parser) parseNumberArgs(n int) ([]float64, error) {
	nums := make([]float64, n)
	for i := range n {
		if i > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		v, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		nums[i] = v
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return nums, nil
}

// parseNumber scans an optional minus sign, an integer part and an
// optional fractional part. A dot not followed by a digit is left
// unconsumed, since it starts a suffix instead.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	if p.digits() == 0 {
		p.pos = start
		return 0, p.errorf("expected number")
	}
	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		mark := p.pos
		p.pos++
		if p.digits() == 0 {
			p.pos = mark
		}
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("malformed number %q", p.input[start:p.pos])
	}
	return v, nil
}

// digits consumes a run of decimal digits and returns its length.
func (p *parser) digits() int {
	n := 0
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}
