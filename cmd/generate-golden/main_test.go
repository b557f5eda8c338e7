package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"
)

// TestFibBig checks the oracle against well-known values.
func TestFibBig(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		expected string
	}{
		{"F(0) base case", 0, "0"},
		{"F(1) base case", 1, "1"},
		{"F(2) first non-trivial", 2, "1"},
		{"F(3)", 3, "2"},
		{"F(4)", 4, "3"},
		{"F(5)", 5, "5"},
		{"F(10)", 10, "55"},
		{"F(20)", 20, "6765"},
		{"F(50)", 50, "12586269025"},
		{"F(93) largest uint64", 93, "12200160415121876738"},
		{"F(94) requires big.Int", 94, "19740274219868223167"},
		{"F(100)", 100, "354224848179261915075"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := fibBig(tt.n)
			if result.String() != tt.expected {
				t.Errorf("fibBig(%d) = %s, want %s", tt.n, result.String(), tt.expected)
			}
		})
	}
}

// TestFibBig_AgreesWithIteration checks the doubling oracle against the
// additive recurrence used by writeGolden.
func TestFibBig_AgreesWithIteration(t *testing.T) {
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n <= maxIndex+2; n++ {
		if got := fibBig(n); got.Cmp(a) != 0 {
			t.Fatalf("fibBig(%d) = %s, want %s", n, got, a)
		}
		a.Add(a, b)
		a, b = b, a
	}
}

func TestWriteGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGolden(&buf, maxIndex); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[buf.Len()-1] != '\n' {
		t.Error("output should end with a newline")
	}

	var doc goldenFile
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Capacity != capacity || doc.MaxIndex != maxIndex {
		t.Errorf("header = %d/%d, want %d/%d", doc.Capacity, doc.MaxIndex, capacity, maxIndex)
	}
	if len(doc.Values) != maxIndex+1 {
		t.Fatalf("got %d values, want %d", len(doc.Values), maxIndex+1)
	}
	for _, e := range doc.Values {
		if want := fibBig(e.N).String(); e.Value != want {
			t.Fatalf("F(%d) = %s, want %s", e.N, e.Value, want)
		}
	}
	if last := doc.Values[maxIndex].Value; len(last) > capacity {
		t.Errorf("F(%d) has %d digits, more than the capacity", maxIndex, len(last))
	}
	if next := fibBig(maxIndex + 2); len(next.String()) <= capacity {
		t.Errorf("F(%d) should overflow the capacity", maxIndex+2)
	}
}
