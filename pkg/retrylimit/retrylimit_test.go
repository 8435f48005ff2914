package retrylimit

import (
	"errors"
	"testing"
)

func TestObserveAdjustsLimit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want float64
	}{
		{name: "overload 429 halves", err: &StatusError{Code: 429}, want: 2},
		{name: "overload 503 halves", err: &StatusError{Code: 503}, want: 2},
		{name: "client error neutral", err: &StatusError{Code: 404}, want: 4},
		{name: "plain error neutral", err: errors.New("boom"), want: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lim := NewAdaptiveLimiter(4, 1, 10, 1, 0.5)
			lim.Observe(tc.err)
			if got := lim.CurrentLimit(); got != tc.want {
				t.Errorf("CurrentLimit() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestObserveSuccessIncreases(t *testing.T) {
	lim := NewAdaptiveLimiter(4, 1, 10, 1, 0.5)
	lim.Observe(nil)
	if got := lim.CurrentLimit(); got != 5 {
		t.Errorf("CurrentLimit() = %v, want 5", got)
	}
}

func TestLimitRespectsBounds(t *testing.T) {
	lim := NewAdaptiveLimiter(2, 1, 3, 1, 0.5)

	lim.Observe(nil)
	lim.Observe(nil)
	if got := lim.CurrentLimit(); got != 3 {
		t.Errorf("CurrentLimit() = %v, want max 3", got)
	}

	for i := 0; i < 5; i++ {
		lim.Observe(&StatusError{Code: 500})
	}
	if got := lim.CurrentLimit(); got != 1 {
		t.Errorf("CurrentLimit() = %v, want min 1", got)
	}
}
