package terminal

import "testing"

func TestParseOSC11(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  RGB
		ok    bool
	}{
		{
			name:  "16-bit components with BEL",
			reply: "\x1b]11;rgb:1a1a/1b1b/2626\x07",
			want:  RGB{R: 0x1a, G: 0x1b, B: 0x26},
			ok:    true,
		},
		{
			name:  "16-bit components with ST",
			reply: "\x1b]11;rgb:ffff/0000/8080\x1b\\",
			want:  RGB{R: 0xff, G: 0x00, B: 0x80},
			ok:    true,
		},
		{
			name:  "8-bit components",
			reply: "\x1b]11;rgb:00/ff/00\x07",
			want:  RGB{R: 0x00, G: 0xff, B: 0x00},
			ok:    true,
		},
		{
			name:  "4-bit components",
			reply: "\x1b]11;rgb:f/0/f\x07",
			want:  RGB{R: 0xff, G: 0x00, B: 0xff},
			ok:    true,
		},
		{
			name:  "leading garbage before reply",
			reply: "junk\x1b]11;rgb:0000/0000/0000\x07",
			want:  RGBBlack,
			ok:    true,
		},
		{
			name:  "incomplete reply",
			reply: "\x1b]11;rgb:1a1a/1b1b",
			ok:    false,
		},
		{
			name:  "wrong color spec",
			reply: "\x1b]11;#1a1b26\x07",
			ok:    false,
		},
		{
			name:  "non-hex component",
			reply: "\x1b]11;rgb:zz/00/00\x07",
			ok:    false,
		},
		{
			name:  "empty input",
			reply: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseOSC11([]byte(tt.reply))
			if ok != tt.ok {
				t.Fatalf("parseOSC11(%q) ok = %v, want %v", tt.reply, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseOSC11(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestScaleChannel(t *testing.T) {
	tests := []struct {
		v      uint16
		digits int
		want   uint8
	}{
		{0xf, 1, 0xff},
		{0x8, 1, 0x88},
		{0xff, 2, 0xff},
		{0x1a, 2, 0x1a},
		{0xfff, 3, 0xff},
		{0xffff, 4, 0xff},
		{0x8000, 4, 0x80},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := scaleChannel(tt.v, tt.digits); got != tt.want {
			t.Errorf("scaleChannel(%#x, %d) = %#x, want %#x", tt.v, tt.digits, got, tt.want)
		}
	}
}
