package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProber_ProbeReportsReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	prober := NewProber(server.URL, time.Minute, NewSignal(false))
	if !prober.probe(context.Background()) {
		t.Fatal("expected reachable server to probe online")
	}
}

func TestProber_ProbeReportsServerErrorAsOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	prober := NewProber(server.URL, time.Minute, NewSignal(true))
	if prober.probe(context.Background()) {
		t.Fatal("expected 5xx probe to report offline")
	}
}

func TestProber_ProbeReportsUnreachableAsOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	prober := NewProber(url, time.Minute, NewSignal(true))
	if prober.probe(context.Background()) {
		t.Fatal("expected closed server to probe offline")
	}
}

func TestProber_RunFeedsSignal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	signal := NewSignal(false)
	prober := NewProber(server.URL, time.Hour, signal)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		prober.Run(ctx)
		close(done)
	}()

	select {
	case online := <-signal.Events():
		if !online {
			t.Fatal("expected online event from first probe")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for probe event")
	}

	cancel()
	<-done
}
