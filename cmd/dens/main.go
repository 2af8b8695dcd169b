// dens reads newline-separated numbers from stdin and prints the
// density, log-density, and (where defined) cumulative probability of
// each under a chosen distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/probkit/probkit/dist"
)

var (
	family = flag.String("dist", "normal", "distribution family: gamma, normal, exponential, uniform, lognormal, logitnormal")
	alpha  = flag.Float64("alpha", 1, "shape (gamma)")
	beta   = flag.Float64("beta", 1, "rate (gamma, exponential)")
	mu     = flag.Float64("mu", 0, "location (normal, lognormal, logitnormal)")
	sigma  = flag.Float64("sigma", 1, "spread (normal, lognormal, logitnormal)")
	a      = flag.Float64("a", 0, "lower bound (uniform)")
	b      = flag.Float64("b", 1, "upper bound (uniform)")
)

func main() {
	flag.Parse()

	d := pickDist()
	xs := readInput(os.Stdin)

	pdfs := d.PDFEach(xs)
	logpdfs := d.LogPDFEach(xs)
	cum, hasCDF := d.(dist.CumDist)
	var cdfs []float64
	if hasCDF {
		cdfs = cum.CDFEach(xs)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, x := range xs {
		fmt.Fprintf(w, "%.6g\t%.6g\t%.6g", x, pdfs[i], logpdfs[i])
		if hasCDF {
			fmt.Fprintf(w, "\t%.6g", cdfs[i])
		}
		fmt.Fprintf(w, "\n")
	}
}

func pickDist() dist.Dist {
	switch *family {
	case "gamma":
		return dist.GammaDist{Alpha: *alpha, Beta: *beta}
	case "normal":
		return dist.NormalDist{Mu: *mu, Sigma: *sigma}
	case "exponential":
		return dist.ExpDist{Beta: *beta}
	case "uniform":
		return dist.UniformDist{A: *a, B: *b}
	case "lognormal":
		return dist.LogNormalDist{Mu: *mu, Sigma: *sigma}
	case "logitnormal":
		return dist.LogitNormalDist{Mu: *mu, Sigma: *sigma}
	}
	fmt.Fprintf(os.Stderr, "unknown distribution %q\n", *family)
	os.Exit(2)
	return nil
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return xs
}
