package hal

import "testing"

func TestCompositeOverBlack(t *testing.T) {
	src := []byte{
		0xFF, 0xFF, 0xFF, 0x00,
		0xFF, 0xFF, 0xFF, 0x80,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x80, 0x40, 0x00, 0xFF,
	}
	dst := make([]byte, len(src))
	compositeOverBlack(dst, src)

	want := []byte{
		0x00, 0x00, 0x00, 0xFF,
		0x80, 0x80, 0x80, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x80, 0x40, 0x00, 0xFF,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestCompositeOverBlackShortDst(t *testing.T) {
	src := []byte{0xFF, 0xFF, 0xFF, 0x10, 0xFF, 0xFF, 0xFF, 0x20}
	dst := make([]byte, 6)
	compositeOverBlack(dst, src)

	if dst[0] != 0x10 || dst[3] != 0xFF {
		t.Fatalf("first pixel = %v, want gray 0x10 opaque", dst[:4])
	}
	if dst[4] != 0 || dst[5] != 0 {
		t.Fatalf("partial pixel written: %v", dst[4:])
	}
}
