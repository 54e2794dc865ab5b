package blend

import "testing"

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name                       string
		sr, sg, sb, sa             byte
		dr, dg, db, da             byte
		wantR, wantG, wantB, wantA byte
	}{
		{
			name: "opaque source replaces destination",
			sr:   255, sg: 0, sb: 0, sa: 255,
			dr: 0, dg: 255, db: 0, da: 255,
			wantR: 255, wantG: 0, wantB: 0, wantA: 255,
		},
		{
			name: "transparent source keeps destination",
			sr:   0, sg: 0, sb: 0, sa: 0,
			dr: 0, dg: 128, db: 0, da: 255,
			wantR: 0, wantG: 128, wantB: 0, wantA: 255,
		},
		{
			name: "half-transparent source over opaque destination",
			sr:   128, sg: 0, sb: 0, sa: 128,
			dr: 0, dg: 0, db: 255, da: 255,
			wantR: 128, wantG: 0, wantB: 127, wantA: 255,
		},
		{
			name: "both transparent stays transparent",
			sr:   0, sg: 0, sb: 0, sa: 0,
			dr: 0, dg: 0, db: 0, da: 0,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
	}

	f := Get(SourceOver)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := f(tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("sourceOver = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	tests := []struct {
		name           string
		sa             byte
		dr, dg, db, da byte
		wantA          byte
	}{
		{name: "opaque source erases fully", sa: 255, dr: 100, dg: 100, db: 100, da: 235, wantA: 0},
		{name: "transparent source leaves destination", sa: 0, dr: 100, dg: 100, db: 100, da: 235, wantA: 235},
		{name: "half source halves destination", sa: 128, dr: 0, dg: 0, db: 0, da: 255, wantA: 127},
	}

	f := Get(DestinationOut)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, a := f(0, 0, 0, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if a != tt.wantA {
				t.Errorf("destinationOut alpha = %d, want %d", a, tt.wantA)
			}
		})
	}
}

func TestScreen(t *testing.T) {
	tests := []struct {
		name string
		s, d byte
		want byte
	}{
		{name: "black over black stays black", s: 0, d: 0, want: 0},
		{name: "white dominates", s: 255, d: 40, want: 255},
		{name: "mid values reinforce", s: 128, d: 128, want: 192},
		{name: "source alone passes through", s: 100, d: 0, want: 100},
		{name: "destination alone passes through", s: 0, d: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screenChan(tt.s, tt.d); got != tt.want {
				t.Errorf("screenChan(%d, %d) = %d, want %d", tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestScreenNeverDarkens(t *testing.T) {
	for s := 0; s <= 255; s += 17 {
		for d := 0; d <= 255; d += 17 {
			got := screenChan(byte(s), byte(d))
			if int(got) < s || int(got) < d {
				t.Fatalf("screenChan(%d, %d) = %d darkened a channel", s, d, got)
			}
		}
	}
}

func TestScreenCommutative(t *testing.T) {
	for s := 0; s <= 255; s += 15 {
		for d := 0; d <= 255; d += 15 {
			ab := screenChan(byte(s), byte(d))
			ba := screenChan(byte(d), byte(s))
			if ab != ba {
				t.Fatalf("screenChan(%d, %d) = %d but screenChan(%d, %d) = %d", s, d, ab, d, s, ba)
			}
		}
	}
}

func TestSource(t *testing.T) {
	f := Get(Source)
	r, g, b, a := f(10, 20, 30, 40, 200, 200, 200, 200)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("source = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestGetUnknownFallsBackToSourceOver(t *testing.T) {
	f := Get(Mode(200))
	r, _, _, a := f(255, 0, 0, 255, 0, 0, 0, 0)
	if r != 255 || a != 255 {
		t.Errorf("unknown mode did not behave like source-over: r=%d a=%d", r, a)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{SourceOver, "source-over"},
		{Source, "source"},
		{DestinationOut, "destination-out"},
		{Screen, "screen"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{128, 128, 64},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
