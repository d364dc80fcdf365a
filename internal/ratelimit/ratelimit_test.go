package ratelimit

import (
	"testing"
	"time"
)

func TestAllow_UnderLimit(t *testing.T) {
	limiter := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}
}

func TestAllow_OverLimit(t *testing.T) {
	limiter := New(2, time.Minute)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	if limiter.Allow("10.0.0.1") {
		t.Errorf("Third request should be blocked")
	}
}

func TestAllow_SeparateAddresses(t *testing.T) {
	limiter := New(1, time.Minute)

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("First address should be allowed")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Errorf("Second address has its own window")
	}
	if limiter.Allow("10.0.0.1") {
		t.Errorf("First address should now be blocked")
	}
}

func TestAllow_WindowReset(t *testing.T) {
	limiter := New(1, 10*time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("First request should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("Second request in window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("Request after window expiry should be allowed")
	}
}

func TestAllow_ZeroMax(t *testing.T) {
	limiter := New(0, time.Minute)

	if limiter.Allow("10.0.0.1") {
		t.Errorf("Zero max requests should block everything")
	}
}
