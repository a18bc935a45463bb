package checksum

import "testing"

func TestEmptyInput(t *testing.T) {
	s := New()
	if got := s.Finalize(); got != 0 {
		t.Errorf("checksum of empty input = %d, want 0", got)
	}
}

func TestDeterministic(t *testing.T) {
	a := New().Consume([]byte("hello world")).Finalize()
	b := New().Consume([]byte("hello world")).Finalize()
	if a != b {
		t.Errorf("same input produced different checksums: %d != %d", a, b)
	}
}

func TestChunkingDoesNotAffectResult(t *testing.T) {
	whole := New().Consume([]byte("hello world")).Finalize()
	chunked := New().Consume([]byte("hello")).Consume([]byte(" ")).Consume([]byte("world")).Finalize()
	if whole != chunked {
		t.Errorf("chunked consume produced different checksum: %d != %d", chunked, whole)
	}
}

func TestDifferentContentDiffers(t *testing.T) {
	a := New().Consume([]byte("foo")).Finalize()
	b := New().Consume([]byte("bar")).Finalize()
	if a == b {
		t.Errorf("distinct content hashed to the same checksum: %d", a)
	}
}

func TestRestartableAfterFinalize(t *testing.T) {
	s := New()
	s.Consume([]byte("first"))
	first := s.Finalize()

	s.Consume([]byte("first"))
	second := s.Finalize()

	if first != second {
		t.Errorf("reused Summer diverged: %d != %d", first, second)
	}
}
