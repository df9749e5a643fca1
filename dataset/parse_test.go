package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        []float64
		wantSkipped []string
	}{
		{"empty", "", nil, nil},
		{"commas", "1,2,3", []float64{1, 2, 3}, nil},
		{"mixed_separators", "1, 2\n3 x 4", []float64{1, 2, 3, 4}, []string{"x"}},
		{"repeated_separators", "1,,  ,2", []float64{1, 2}, nil},
		{"scientific", "1e3 -2.5e-2", []float64{1000, -0.025}, nil},
		{"only_garbage", "foo bar", nil, []string{"foo", "bar"}},
		{"tabs_and_newlines", "1\t2\r\n3", []float64{1, 2, 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, skipped := Parse(tt.text)

			if len(values) != len(tt.want) {
				t.Fatalf("values = %v, want %v", values, tt.want)
			}
			for i := range tt.want {
				if values[i] != tt.want[i] {
					t.Fatalf("values = %v, want %v", values, tt.want)
				}
			}

			if len(skipped) != len(tt.wantSkipped) {
				t.Fatalf("skipped = %v, want %v", skipped, tt.wantSkipped)
			}
			for i := range tt.wantSkipped {
				if skipped[i] != tt.wantSkipped[i] {
					t.Fatalf("skipped = %v, want %v", skipped, tt.wantSkipped)
				}
			}
		})
	}
}

func TestRead(t *testing.T) {
	values, skipped, err := Read(strings.NewReader("10, 20\nbad 30"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := []float64{10, 20, 30}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("values = %v, want %v", values, want)
		}
	}
	if len(skipped) != 1 || skipped[0] != "bad" {
		t.Fatalf("skipped = %v, want [bad]", skipped)
	}
}

type failReader struct{ err error }

func (r failReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadPropagatesError(t *testing.T) {
	readErr := errors.New("broken pipe")

	_, _, err := Read(failReader{err: readErr})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, readErr) {
		t.Fatalf("error %v should wrap %v", err, readErr)
	}
}
