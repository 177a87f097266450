package buf

import (
	"bytes"
	"errors"
	"testing"
)

func TestTag(t *testing.T) {
	rest, matched, err := Tag([]byte("Stella BINARY xyz"), []byte("Stella BINARY "))
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if string(matched) != "Stella BINARY " || string(rest) != "xyz" {
		t.Fatalf("unexpected split: matched=%q rest=%q", matched, rest)
	}

	in := []byte{0x33, 0x01}
	rest, matched, err = Tag(in, []byte{0x33, 0x00})
	if !errors.Is(err, ErrUnexpectedBytes) {
		t.Fatalf("expected ErrUnexpectedBytes, got %v", err)
	}
	if matched != nil || !bytes.Equal(rest, in) {
		t.Fatalf("failed Tag must not consume: matched=%v rest=%v", matched, rest)
	}

	// Shorter than the literal is a mismatch, not EOF.
	if _, _, err := Tag([]byte{0xB8, 0xA5}, []byte{0xB8, 0xA5, 0xA9, 0x6A}); !errors.Is(err, ErrUnexpectedBytes) {
		t.Fatalf("expected ErrUnexpectedBytes for short input, got %v", err)
	}

	// Empty literal always matches.
	if rest, matched, err := Tag([]byte{1}, nil); err != nil || len(matched) != 0 || len(rest) != 1 {
		t.Fatalf("empty literal: rest=%v matched=%v err=%v", rest, matched, err)
	}
}

func TestTake(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	rest, taken, err := Take(data, 3)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if !bytes.Equal(taken, []byte{0, 1, 2}) || !bytes.Equal(rest, []byte{3, 4}) {
		t.Fatalf("unexpected split: taken=%v rest=%v", taken, rest)
	}

	rest, taken, err = Take(data, 5)
	if err != nil || len(rest) != 0 || len(taken) != 5 {
		t.Fatalf("Take all: rest=%v taken=%v err=%v", rest, taken, err)
	}

	if _, _, err := Take(data, 6); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, _, err := Take(data, -1); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF for negative n, got %v", err)
	}
	if rest, taken, err := Take(nil, 0); err != nil || len(rest) != 0 || len(taken) != 0 {
		t.Fatalf("Take(nil, 0): rest=%v taken=%v err=%v", rest, taken, err)
	}
}

func TestTakeTill(t *testing.T) {
	isNUL := func(c byte) bool { return c == 0x00 }
	tests := []struct {
		name      string
		in        []byte
		wantTaken []byte
		wantRest  []byte
	}{
		{"stops before delimiter", []byte{'a', 'b', 0, 'c'}, []byte{'a', 'b'}, []byte{0, 'c'}},
		{"empty prefix", []byte{0, 'a'}, []byte{}, []byte{0, 'a'}},
		{"no delimiter consumes all", []byte{'a', 'b'}, []byte{'a', 'b'}, []byte{}},
		{"empty input", []byte{}, []byte{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, taken := TakeTill(tt.in, isNUL)
			if !bytes.Equal(taken, tt.wantTaken) || !bytes.Equal(rest, tt.wantRest) {
				t.Fatalf("TakeTill: taken=%v rest=%v", taken, rest)
			}
			rest, taken = TakeTillByte(tt.in, 0x00)
			if !bytes.Equal(taken, tt.wantTaken) || !bytes.Equal(rest, tt.wantRest) {
				t.Fatalf("TakeTillByte: taken=%v rest=%v", taken, rest)
			}
			if len(taken)+len(rest) != len(tt.in) {
				t.Fatalf("bytes lost: %d+%d != %d", len(taken), len(rest), len(tt.in))
			}
		})
	}
}
