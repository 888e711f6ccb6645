package checksum

import "testing"

func TestSum_Stable(t *testing.T) {
	if Sum([]byte("abc")) != Sum([]byte("abc")) {
		t.Error("same input should give same digest")
	}
	if Sum([]byte("abc")) == Sum([]byte("abd")) {
		t.Error("different input should give different digest")
	}
}

func TestFields_BoundariesMatter(t *testing.T) {
	if Fields("ab", "c") == Fields("a", "bc") {
		t.Error("field boundaries must change the digest")
	}
	if Fields("x", "y") != Fields("x", "y") {
		t.Error("digest should be deterministic")
	}
}
