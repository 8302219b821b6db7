package utf8dec

import "testing"

func feedAll(t *testing.T, m *Machine, bs []byte) (rune, State) {
	t.Helper()
	var r rune
	var st State
	for _, b := range bs {
		r, st = m.Feed(b)
	}
	return r, st
}

func TestASCII(t *testing.T) {
	var m Machine
	r, st := m.Feed('A')
	if st != StateAccept || r != 'A' {
		t.Fatalf("got %q %v, want 'A' Accept", r, st)
	}
}

func TestTwoByte(t *testing.T) {
	var m Machine
	// U+00E9 'é' = 0xC3 0xA9
	r, st := feedAll(t, &m, []byte{0xC3, 0xA9})
	if st != StateAccept || r != 'é' {
		t.Fatalf("got %q %v, want 'é' Accept", r, st)
	}
}

func TestThreeByte(t *testing.T) {
	var m Machine
	// U+4E2D '中' = 0xE4 0xB8 0xAD
	r, st := feedAll(t, &m, []byte{0xE4, 0xB8, 0xAD})
	if st != StateAccept || r != '中' {
		t.Fatalf("got %q %v, want '中' Accept", r, st)
	}
}

func TestFourByte(t *testing.T) {
	var m Machine
	// U+1F600 grinning face = 0xF0 0x9F 0x98 0x80
	r, st := feedAll(t, &m, []byte{0xF0, 0x9F, 0x98, 0x80})
	if st != StateAccept || r != 0x1F600 {
		t.Fatalf("got %#x %v, want 0x1F600 Accept", r, st)
	}
}

func TestOverlongRejected(t *testing.T) {
	var m Machine
	// overlong encoding of '/' (0x2F) as two bytes: 0xC0 0xAF
	_, st1 := m.Feed(0xC0)
	if st1 != StateReject {
		t.Fatalf("lead byte 0xC0 should reject immediately, got %v", st1)
	}
}

func TestStrayContinuationRejected(t *testing.T) {
	var m Machine
	r, st := m.Feed(0x80)
	if st != StateReject || r != replacementChar {
		t.Fatalf("got %q %v, want replacement Reject", r, st)
	}
}

func TestTruncatedSequenceThenASCIIRejectsFirst(t *testing.T) {
	var m Machine
	m.Feed(0xE4) // start of 3-byte sequence
	r, st := m.Feed('A')
	if st != StateReject || r != replacementChar {
		t.Fatalf("got %q %v, want Reject on truncated sequence", r, st)
	}
}

func TestResetAllowsRecovery(t *testing.T) {
	var m Machine
	m.Feed(0xE4)
	m.Feed('A') // rejects and resets
	r, st := m.Feed('B')
	if st != StateAccept || r != 'B' {
		t.Fatalf("machine should recover after reject, got %q %v", r, st)
	}
}
