package domain

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"completed to completed", StatusCompleted, StatusCompleted, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"unknown status", OrderStatus("Cancelled"), StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("CanTransitionTo(%s→%s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
