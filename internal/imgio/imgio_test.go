package imgio

import "testing"

func TestContentHashIsDeterministic(t *testing.T) {
	data := []byte("golden fixture bytes")
	if ContentHash(data) != ContentHash(append([]byte(nil), data...)) {
		t.Errorf("ContentHash not deterministic across equal byte slices")
	}
}

func TestContentHashDiffersOnChange(t *testing.T) {
	a := []byte("golden fixture bytes")
	b := []byte("golden fixture Bytes")
	if ContentHash(a) == ContentHash(b) {
		t.Errorf("ContentHash collided for distinguishable inputs")
	}
}
