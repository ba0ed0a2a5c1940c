package ratelimit

import "testing"

func TestAllowWithinCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("ip", 3, 0) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("ip", 3, 0) {
		t.Fatalf("capacity exhausted, request should be denied")
	}
}

func TestKeysIndependent(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		l.Allow("a", 3, 0)
	}
	if !l.Allow("b", 3, 0) {
		t.Fatalf("other key should have its own bucket")
	}
}
