package postgres

import (
	"errors"
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	orig := Cursor{
		CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		ID:        "6f1c9a2e-0000-0000-0000-000000000001",
	}

	enc, err := EncodeCursor(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeCursor(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil || !got.CreatedAt.Equal(orig.CreatedAt) || got.ID != orig.ID {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestDecodeCursor_Empty(t *testing.T) {
	got, err := DecodeCursor("")
	if err != nil || got != nil {
		t.Fatalf("empty cursor should decode to nil, got %+v err %v", got, err)
	}
}

func TestDecodeCursor_Garbage(t *testing.T) {
	for _, s := range []string{"%%%", "bm90IGpzb24"} { // не base64; base64, но не json
		if _, err := DecodeCursor(s); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("DecodeCursor(%q) err = %v, want ErrInvalidCursor", s, err)
		}
	}
}
