package memory

import (
	"context"
	"testing"
)

func TestKVStore_ReadMissing(t *testing.T) {
	s := NewKVStore()

	v, ok, err := s.Read(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected absent key, got %q ok=%v", v, ok)
	}
}

func TestKVStore_WriteReadDelete(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	if err := s.Write(ctx, "k", `["bitcoin"]`); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Write(ctx, "k", `["ethereum"]`); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	v, ok, err := s.Read(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Read failed: %v ok=%v", err, ok)
	}
	if v != `["ethereum"]` {
		t.Errorf("value mismatch: got %s", v)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if _, ok, _ := s.Read(ctx, "k"); ok {
		t.Error("key still present after Delete")
	}
}
