package chess

import (
	"errors"
	"testing"

	chesserr "github.com/KurranD/ChessGame/internal/errors"
)

func TestCoordString(t *testing.T) {
	tests := []struct {
		c    Coord
		want string
	}{
		{C(0, 0), "a8"},
		{C(7, 7), "h1"},
		{C(4, 6), "e2"},
		{C(4, 1), "e7"},
		{C(8, 3), "(8,3)"},
		{C(-1, 4), "(-1,4)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			c := C(file, rank)
			got, err := ParseCoord(c.String())
			if err != nil {
				t.Fatalf("ParseCoord(%q) error: %v", c.String(), err)
			}
			if got != c {
				t.Errorf("ParseCoord(%q) = %v; want %v", c.String(), got, c)
			}
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "e22", "11"} {
		if _, err := ParseCoord(bad); !errors.Is(err, chesserr.ErrInvalidCoord) {
			t.Errorf("ParseCoord(%q) error = %v; want ErrInvalidCoord", bad, err)
		}
	}
}

func TestOnBoard(t *testing.T) {
	tests := []struct {
		c    Coord
		want bool
	}{
		{C(0, 0), true},
		{C(7, 7), true},
		{C(8, 3), false},
		{C(-1, 4), false},
		{C(3, 8), false},
		{C(3, -1), false},
	}
	for _, tt := range tests {
		if got := tt.c.OnBoard(); got != tt.want {
			t.Errorf("%v.OnBoard() = %v; want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"white", White, false},
		{"Black", Black, false},
		{" WHITE ", White, false},
		{"red", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColour(tt.in)
		if tt.wantErr {
			if !errors.Is(err, chesserr.ErrInvalidColour) {
				t.Errorf("ParseColour(%q) error = %v; want ErrInvalidColour", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColour(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d/%d; want -1/1", White.Forward(), Black.Forward())
	}
	if Colour(7).Valid() {
		t.Error("Colour(7).Valid() = true; want false")
	}
}

func TestParsePieceType(t *testing.T) {
	for pt := Pawn; pt < NumPieceTypes; pt++ {
		got, err := ParsePieceType(pt.String())
		if err != nil || got != pt {
			t.Errorf("ParsePieceType(%q) = %v, %v; want %v", pt.String(), got, err, pt)
		}
	}
	if _, err := ParsePieceType("archbishop"); !errors.Is(err, chesserr.ErrInvalidPieceType) {
		t.Errorf("ParsePieceType(archbishop) error = %v; want ErrInvalidPieceType", err)
	}
}
