package main

import "testing"

func TestHubConnectionLimits(t *testing.T) {
	h := NewHub(nil)

	if !h.CanAccept("10.0.0.1") {
		t.Fatal("fresh hub should accept connections")
	}
	for i := 0; i < maxConnsPerIP; i++ {
		h.TrackConnect("10.0.0.1")
	}
	if h.TotalConns() != maxConnsPerIP {
		t.Errorf("expected %d tracked conns, got %d", maxConnsPerIP, h.TotalConns())
	}
	if h.CanAccept("10.0.0.1") {
		t.Error("IP at its connection limit should be rejected")
	}
	if !h.CanAccept("10.0.0.2") {
		t.Error("other IPs should still be accepted")
	}

	h.TrackDisconnect("10.0.0.1")
	if h.TotalConns() != maxConnsPerIP-1 {
		t.Errorf("expected %d tracked conns after disconnect, got %d", maxConnsPerIP-1, h.TotalConns())
	}
	if !h.CanAccept("10.0.0.1") {
		t.Error("freed slot should accept again")
	}
}

func TestHubOnlinePresence(t *testing.T) {
	h := NewHub(nil)
	c := &Client{hub: h}

	if h.IsOnline(7) {
		t.Error("nobody should be online on a fresh hub")
	}
	h.SetOnline(7, c)
	if !h.IsOnline(7) {
		t.Error("player 7 should be online after SetOnline")
	}
	h.SetOffline(7)
	if h.IsOnline(7) {
		t.Error("player 7 should be offline after SetOffline")
	}
}
