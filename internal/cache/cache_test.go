package cache

import "testing"

func TestKeyDependsOnOptions(t *testing.T) {
	base := Key("# Hello", true, 2000)
	tests := []struct {
		name  string
		input string
		parts []any
		same  bool
	}{
		{"identical", "# Hello", []any{true, 2000}, true},
		{"different input", "# Goodbye", []any{true, 2000}, false},
		{"different option", "# Hello", []any{false, 2000}, false},
		{"different limit", "# Hello", []any{true, 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.input, tt.parts...)
			if (got == base) != tt.same {
				t.Errorf("Key(%q, %v) collision = %v, want %v", tt.input, tt.parts, got == base, tt.same)
			}
		})
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	c := New[int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if c.Has("a") {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v, want 3, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v, want 2, true", v, ok)
	}
}
