package anticipation

import "testing"

func TestFormatInstallmentRange(t *testing.T) {
	tests := []struct {
		name     string
		ordinals []int
		total    int
		want     string
	}{
		{
			name:     "single installment",
			ordinals: []int{5},
			total:    12,
			want:     "Installment 5 of 12",
		},
		{
			name:     "consecutive run",
			ordinals: []int{7, 8, 9, 10},
			total:    12,
			want:     "Installments 7–10 of 12",
		},
		{
			name:     "pair",
			ordinals: []int{3, 4},
			total:    6,
			want:     "Installments 3–4 of 6",
		},
		{
			name:     "non-contiguous",
			ordinals: []int{2, 4, 6},
			total:    10,
			want:     "3 installments of 10",
		},
		{
			name:     "whole series",
			ordinals: []int{1, 2, 3},
			total:    3,
			want:     "Installments 1–3 of 3",
		},
		{
			name:     "empty",
			ordinals: nil,
			total:    3,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatInstallmentRange(tt.ordinals, tt.total); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateDescription(t *testing.T) {
	got := GenerateDescription(4, "Sofa 12x")
	want := "Anticipation of 4 installments - Sofa 12x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateNote(t *testing.T) {
	got := GenerateNote([]int{7, 8, 9}, 12)
	want := "Anticipation: Installments 7–9 of 12"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
