package v4l2

import (
	"bytes"
	"testing"
)

func TestCopyFrame(t *testing.T) {
	s := New("/dev/video0")
	dst := make([]byte, 8)

	if !s.copyFrame(dst, nil) {
		t.Fatal("an empty device frame should keep the loop alive")
	}

	full := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !s.copyFrame(dst, full) {
		t.Fatal("an exact-size frame should be copied")
	}
	if !bytes.Equal(dst, full) {
		t.Fatalf("expected %v, got %v", full, dst)
	}

	if s.copyFrame(dst, make([]byte, 9)) {
		t.Fatal("an oversized frame must end the loop")
	}
	if s.copyFrame(dst, make([]byte, 4)) {
		t.Fatal("a short frame must end the loop")
	}
	if !bytes.Equal(dst, full) {
		t.Fatalf("mismatched frames must not touch dst: got %v", dst)
	}
}
