package parser

import "testing"

func TestGroundPrint(t *testing.T) {
	p := NewParser()
	acts := p.Parse('H')
	if len(acts) != 1 {
		t.Fatalf("got %d actions, want 1", len(acts))
	}
	pr, ok := acts[0].(Print)
	if !ok || pr.Rune() != 'H' {
		t.Fatalf("got %#v, want Print('H')", acts[0])
	}
	if p.State() != Ground {
		t.Fatalf("expected to remain in GROUND")
	}
}

func TestC0ExecuteStaysInGround(t *testing.T) {
	p := NewParser()
	acts := p.Parse(0x0A) // LF
	if len(acts) != 1 {
		t.Fatalf("got %d actions, want 1", len(acts))
	}
	if _, ok := acts[0].(Execute); !ok {
		t.Fatalf("got %#v, want Execute", acts[0])
	}
	if p.State() != Ground {
		t.Fatalf("LF must not leave GROUND")
	}
}

func TestSimpleCSISequence(t *testing.T) {
	p := NewParser()
	var all []Action
	for _, r := range []rune{0x1B, '[', '3', '1', 'm'} {
		all = append(all, p.Parse(r)...)
	}
	// ESC -> Clear; '[' -> ESCAPE moves to CSI_ENTRY, whose entry emits
	// Clear; '3','1' -> Param, Param; 'm' -> CsiDispatch, back to GROUND.
	var finals []Action
	for _, a := range all {
		finals = append(finals, a)
	}
	if len(finals) == 0 {
		t.Fatalf("expected at least one action")
	}
	last := finals[len(finals)-1]
	cd, ok := last.(CsiDispatch)
	if !ok || cd.Rune() != 'm' {
		t.Fatalf("last action = %#v, want CsiDispatch('m')", last)
	}
	if p.State() != Ground {
		t.Fatalf("CSI dispatch must return to GROUND")
	}
}

func TestColonForcesCsiIgnore(t *testing.T) {
	p := NewParser()
	p.Parse(0x1B)
	p.Parse('[')
	p.Parse(':')
	if p.State() != CsiIgnore {
		t.Fatalf("':' inside CSI_ENTRY must force CSI_IGNORE, got different state")
	}
	acts := p.Parse('m')
	if p.State() != Ground {
		t.Fatalf("dispatch final must exit CSI_IGNORE back to GROUND")
	}
	for _, a := range acts {
		if _, ok := a.(CsiDispatch); ok {
			t.Fatalf("CSI_IGNORE must not dispatch: %#v", a)
		}
	}
}

func TestOSCTerminatedByBEL(t *testing.T) {
	p := NewParser()
	var all []Action
	seq := append([]rune{0x1B, ']'}, []rune("0;title")...)
	seq = append(seq, 0x07)
	for _, r := range seq {
		all = append(all, p.Parse(r)...)
	}
	var sawStart, sawEnd bool
	putCount := 0
	for _, a := range all {
		switch a.(type) {
		case OscStart:
			sawStart = true
		case OscEnd:
			sawEnd = true
		case OscPut:
			putCount++
		}
	}
	if !sawStart || !sawEnd {
		t.Fatalf("expected OscStart and OscEnd, got %#v", all)
	}
	if putCount != len("0;title") {
		t.Fatalf("got %d OscPut actions, want %d", putCount, len("0;title"))
	}
	if p.State() != Ground {
		t.Fatalf("BEL must return to GROUND")
	}
}

func TestOSCTerminatedByST(t *testing.T) {
	p := NewParser()
	seq := []rune{0x1B, ']', '1', ';', 'x', 0x1B, '\\'}
	for _, r := range seq {
		p.Parse(r)
	}
	if p.State() != Ground {
		t.Fatalf("ST (ESC \\) must return OSC to GROUND")
	}
}

func TestCANAbortsFromAnyState(t *testing.T) {
	p := NewParser()
	p.Parse(0x1B)
	p.Parse('[')
	p.Parse('3')
	acts := p.Parse(0x18) // CAN
	if p.State() != Ground {
		t.Fatalf("CAN must abort back to GROUND from CSI_PARAM")
	}
	found := false
	for _, a := range acts {
		if _, ok := a.(Execute); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("CAN must produce an Execute action")
	}
}

func TestDcsPassthroughHooksAndPuts(t *testing.T) {
	p := NewParser()
	all := p.Parse(0x1B)
	all = append(all, p.Parse('P')...)
	all = append(all, p.Parse('q')...)
	if p.State() != DcsPassthrough {
		t.Fatalf("expected DCS_PASSTHROUGH after ESC P q")
	}
	hooked := false
	for _, a := range all {
		if _, ok := a.(Hook); ok {
			hooked = true
		}
	}
	if !hooked {
		t.Fatalf("expected a Hook action entering DCS_PASSTHROUGH")
	}
	putActs := p.Parse('X')
	if len(putActs) != 1 {
		t.Fatalf("expected one Put action, got %d", len(putActs))
	}
	if _, ok := putActs[0].(Put); !ok {
		t.Fatalf("expected Put, got %#v", putActs[0])
	}
	end := p.Parse(0x9C) // ST
	unhooked := false
	for _, a := range end {
		if _, ok := a.(Unhook); ok {
			unhooked = true
		}
	}
	if !unhooked {
		t.Fatalf("expected an Unhook action exiting DCS_PASSTHROUGH")
	}
	if p.State() != Ground {
		t.Fatalf("ST must return DCS_PASSTHROUGH to GROUND")
	}
}

func TestParserTotalityAllBytes(t *testing.T) {
	// Every possible byte value, fed from GROUND, must be handled
	// without panicking and must leave the parser in one of the
	// fourteen known states.
	valid := map[State]bool{
		Ground: true, Escape: true, EscapeIntermediate: true,
		CsiEntry: true, CsiParam: true, CsiIntermediate: true, CsiIgnore: true,
		DcsEntry: true, DcsParam: true, DcsIntermediate: true,
		DcsPassthrough: true, DcsIgnore: true, OscString: true, StIgnore: true,
	}
	for i := 0; i < 256; i++ {
		p := NewParser()
		p.Parse(rune(i))
		if !valid[p.State()] {
			t.Fatalf("byte %#x left parser in an unknown state", i)
		}
	}
}

func TestResetReturnsToGround(t *testing.T) {
	p := NewParser()
	p.Parse(0x1B)
	p.Parse('[')
	p.Reset()
	if p.State() != Ground {
		t.Fatalf("Reset must force GROUND")
	}
}
