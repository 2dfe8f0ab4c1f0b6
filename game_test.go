package gosie4d

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyFromName(t *testing.T) {
	cases := []struct {
		name string
		key  ebiten.Key
		ok   bool
	}{
		{"w", ebiten.KeyW, true},
		{"a", ebiten.KeyA, true},
		{"z", ebiten.KeyZ, true},
		{"0", ebiten.KeyDigit0, true},
		{"=", ebiten.KeyEqual, true},
		{"-", ebiten.KeyMinus, true},
		{"escape", ebiten.KeyEscape, true},
		{"space", ebiten.KeySpace, true},
		{"", 0, false},
		{"nosuchkey", 0, false},
	}
	for _, c := range cases {
		key, ok := keyFromName(c.name)
		if ok != c.ok || (ok && key != c.key) {
			t.Errorf("keyFromName(%q) = (%v, %v), want (%v, %v)", c.name, key, ok, c.key, c.ok)
		}
	}
}
