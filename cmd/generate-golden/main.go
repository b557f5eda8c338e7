// Command generate-golden writes the reference values used by the
// fibonacci package tests. Values are computed with math/big so they do not
// depend on the decimal engine under test.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
)

const (
	capacity = 128
	maxIndex = 613
)

// goldenFile is the document read back by internal/fibonacci/golden_test.go.
type goldenFile struct {
	Capacity int           `json:"capacity"`
	MaxIndex int64         `json:"max_index"`
	Values   []goldenEntry `json:"values"`
}

type goldenEntry struct {
	N     uint64 `json:"n"`
	Value string `json:"value"`
}

func main() {
	out := flag.String("out", filepath.Join("internal", "fibonacci", "testdata", "golden.json"), "Destination file.")
	flag.Parse()

	if err := writeFile(*out); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
}

func writeFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return writeGolden(f, maxIndex)
}

// writeGolden encodes F(0) through F(upTo) as indented JSON.
func writeGolden(w io.Writer, upTo uint64) error {
	doc := goldenFile{Capacity: capacity, MaxIndex: int64(upTo)}
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n <= upTo; n++ {
		doc.Values = append(doc.Values, goldenEntry{N: n, Value: a.String()})
		a.Add(a, b)
		a, b = b, a
	}
	if last := doc.Values[upTo].Value; last != fibBig(upTo).String() {
		return fmt.Errorf("F(%d): recurrence and doubling disagree", upTo)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// fibBig returns F(n) by fast doubling on big.Int.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 63; i >= 0; i-- {
		// F(2m) = F(m) * (2F(m+1) - F(m)), F(2m+1) = F(m)^2 + F(m+1)^2
		t := new(big.Int).Lsh(b, 1)
		t.Sub(t, a)
		c := new(big.Int).Mul(a, t)
		d := new(big.Int).Mul(a, a)
		d.Add(d, new(big.Int).Mul(b, b))
		if n>>uint(i)&1 == 0 {
			a, b = c, d
		} else {
			a, b = d, c.Add(c, d)
		}
	}
	return a
}
