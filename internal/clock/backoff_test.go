package clock

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name     string
		backoff  Backoff
		failures int
		want     time.Duration
	}{
		{name: "no failures", backoff: Backoff{Base: time.Second, Max: time.Minute}, failures: 0, want: 0},
		{name: "first failure", backoff: Backoff{Base: time.Second, Max: time.Minute}, failures: 1, want: time.Second},
		{name: "doubles", backoff: Backoff{Base: time.Second, Max: time.Minute}, failures: 4, want: 8 * time.Second},
		{name: "capped", backoff: Backoff{Base: time.Second, Max: 10 * time.Second}, failures: 5, want: 10 * time.Second},
		{name: "many failures stay capped", backoff: Backoff{Base: time.Second, Max: 10 * time.Second}, failures: 1000, want: 10 * time.Second},
		{name: "unbounded doubles", backoff: Backoff{Base: time.Second}, failures: 11, want: 1024 * time.Second},
		{name: "unbounded saturates instead of wrapping", backoff: Backoff{Base: time.Second}, failures: 1000, want: time.Duration(math.MaxInt64)},
		{name: "zero base", backoff: Backoff{Max: time.Second}, failures: 3, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.backoff.Delay(tt.failures); got != tt.want {
				t.Errorf("Delay(%d) = %v, want %v", tt.failures, got, tt.want)
			}
		})
	}
}

func TestWait(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) (context.Context, time.Duration)
		wantErr   error
		expectMin time.Duration
		expectMax time.Duration
	}{
		{
			name: "waits for duration when context active",
			setup: func(_ *testing.T) (context.Context, time.Duration) {
				return context.Background(), 15 * time.Millisecond
			},
			expectMin: 15 * time.Millisecond,
		},
		{
			name: "returns when context canceled",
			setup: func(t *testing.T) (context.Context, time.Duration) {
				ctx, cancel := context.WithCancel(context.Background())
				t.Cleanup(cancel)
				time.AfterFunc(5*time.Millisecond, cancel)
				return ctx, 200 * time.Millisecond
			},
			wantErr:   context.Canceled,
			expectMax: 60 * time.Millisecond,
		},
		{
			name: "zero duration reports a done context",
			setup: func(t *testing.T) (context.Context, time.Duration) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, 0
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, duration := tt.setup(t)

			start := time.Now()
			err := Wait(ctx, duration)
			elapsed := time.Since(start)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Wait() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Wait() error = %v, want %v", err, tt.wantErr)
			}
			if tt.expectMin > 0 && elapsed < tt.expectMin {
				t.Fatalf("Wait() returned too early: elapsed %v, expected at least %v", elapsed, tt.expectMin)
			}
			if tt.expectMax > 0 && elapsed > tt.expectMax {
				t.Fatalf("Wait() returned too late: elapsed %v, expected under %v", elapsed, tt.expectMax)
			}
		})
	}
}
