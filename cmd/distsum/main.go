// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distsum reads numeric samples and prints descriptive statistics.
//
// Usage:
//
//	distsum [flags] [sample.txt [other.txt]]
//
// Each input is a text file of whitespace-separated numbers. If no
// inputs are provided, distsum reads one sample from stdin.
//
// For one sample, distsum prints the moment statistics (mean,
// standard deviation, skewness, kurtosis), the quartiles, the
// Jarque-Bera normality verdict, and a histogram. With -kde it adds
// a kernel density estimate and its modes.
//
// For two samples, distsum additionally prints the paired error
// metrics (requires equal lengths) and the two-sample
// Kolmogorov-Smirnov verdict.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/smaerivo/smtools-sub002/compare"
	"github.com/smaerivo/smtools-sub002/empirical"
	"github.com/smaerivo/smtools-sub002/mathtools"
)

var (
	flagBins   = flag.Int("bins", 0, "histogram bin count (0 uses the Freedman-Diaconis rule)")
	flagKDE    = flag.Bool("kde", false, "print a kernel density estimate")
	flagKernel = flag.String("kernel", "gaussian", "KDE `kernel`: rectangular, triangular, epanechnikov, quartic, gaussian, or lanczos")
	flagAlpha  = flag.Float64("alpha", 0.05, "significance `level` for hypothesis tests")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: distsum [flags] [sample.txt [other.txt]]

distsum reads whitespace-separated numbers from each input file (or
stdin) and prints descriptive statistics. With two inputs it also
compares the samples.
`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("distsum: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(2)
	}

	kernel, err := mathtools.ParseKernel(*flagKernel)
	if err != nil {
		log.Fatal(err)
	}

	var samples [][]float64
	if flag.NArg() == 0 {
		x, err := readSample(os.Stdin)
		if err != nil {
			log.Fatal("reading stdin: ", err)
		}
		samples = append(samples, x)
	}
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		x, err := readSample(f)
		f.Close()
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		samples = append(samples, x)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	dists := make([]*empirical.Distribution, len(samples))
	for i, x := range samples {
		if len(x) == 0 {
			log.Fatal("empty sample")
		}
		dists[i] = empirical.NewWithBinCount(x, *flagBins)
		if i > 0 {
			fmt.Fprintln(w)
		}
		printSummary(w, dists[i], kernel)
	}

	if len(dists) == 2 {
		fmt.Fprintln(w)
		printComparison(w, dists[0], dists[1])
	}
}

// readSample parses all whitespace-separated numbers from r.
func readSample(r io.Reader) ([]float64, error) {
	var x []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, err
		}
		x = append(x, v)
	}
	return x, sc.Err()
}

func printSummary(w *bufio.Writer, d *empirical.Distribution, kernel mathtools.Kernel) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "n\t%d\n", d.N())
	fmt.Fprintf(tw, "min\t%g\n", d.Min())
	fmt.Fprintf(tw, "p25\t%g\n", d.Percentile(25))
	fmt.Fprintf(tw, "median\t%g\n", d.Median())
	fmt.Fprintf(tw, "p75\t%g\n", d.Percentile(75))
	fmt.Fprintf(tw, "max\t%g\n", d.Max())
	fmt.Fprintf(tw, "mean\t%g\n", d.Mean())
	fmt.Fprintf(tw, "stddev\t%g\n", d.StdDev())
	fmt.Fprintf(tw, "skewness\t%g\t%s\n", d.Skewness(), d.SkewnessInterpretation(nil))
	fmt.Fprintf(tw, "kurtosis\t%g\t%s\n", d.Kurtosis(), d.KurtosisInterpretation(nil))
	fmt.Fprintf(tw, "Jarque-Bera\t%g\tnormality %s at alpha %v\n",
		d.JarqueBera(), verdict(d.JarqueBeraAccepted(*flagAlpha)), *flagAlpha)
	outliers := 0
	for _, o := range d.Outliers() {
		if o {
			outliers++
		}
	}
	fmt.Fprintf(tw, "outliers\t%d\n", outliers)
	tw.Flush()

	printHistogram(w, d)
	if *flagKDE {
		printKDE(w, d, kernel)
	}

	for _, warn := range d.Warnings() {
		fmt.Fprintln(os.Stderr, "warning:", warn)
	}
}

func printHistogram(w *bufio.Writer, d *empirical.Distribution) {
	fmt.Fprintln(w, "histogram:")
	edges := d.BinRightEdges()
	freqs := d.BinFrequencies()
	counts := d.BinCounts()
	maxFreq := 0.0
	for _, f := range freqs {
		maxFreq = math.Max(maxFreq, f)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for i := range freqs {
		bar := ""
		if maxFreq > 0 {
			bar = strings.Repeat("*", int(freqs[i]/maxFreq*40+0.5))
		}
		fmt.Fprintf(tw, "(%g\t%g]\t%d\t%.4f\t  %s\n",
			leftEdge(d, edges, i), edges[i], counts[i], freqs[i], bar)
	}
	tw.Flush()
}

// leftEdge returns the left boundary of bin i: the previous right
// edge, or the sample minimum for the first bin.
func leftEdge(d *empirical.Distribution, edges []float64, i int) float64 {
	if i == 0 {
		return d.Min()
	}
	return edges[i-1]
}

func printKDE(w *bufio.Writer, d *empirical.Distribution, kernel mathtools.Kernel) {
	h := d.KDEBandwidth(kernel)
	curve := d.EstimateKDEPDF(kernel, h, 101, d.Min(), d.Max())
	if curve.Len() == 0 {
		fmt.Fprintln(w, "kde: not available")
		return
	}
	fmt.Fprintf(w, "kde (%s kernel, bandwidth %g):\n", kernel, h)
	for _, m := range d.KDEModes() {
		fmt.Fprintf(w, "  mode at %g (density %.4g)\n", m.X, m.Density)
	}
}

func printComparison(w *bufio.Writer, x, y *empirical.Distribution) {
	fmt.Fprintln(w, "comparison:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	c, err := compare.NewFromDistributions(x, y)
	if err != nil {
		fmt.Fprintf(tw, "paired metrics\tskipped: %v\n", err)
	} else {
		fmt.Fprintf(tw, "MAE\t%g\n", c.MAE())
		fmt.Fprintf(tw, "MSE\t%g\n", c.MSE())
		fmt.Fprintf(tw, "RMSE\t%g\n", c.RMSE())
		fmt.Fprintf(tw, "RMSEP\t%g%%\n", c.RMSEP())
		fmt.Fprintf(tw, "MAPE\t%g%%\n", c.MAPE())
		fmt.Fprintf(tw, "max error\t%g\n", c.MaxE())
		fmt.Fprintf(tw, "mean error\t%g\n", c.ME())
		fmt.Fprintf(tw, "EQC\t%g\n", c.EQC())
		fmt.Fprintf(tw, "correlation\t%g\n", c.Correlation())
	}

	d, p, err := compare.KolmogorovSmirnov(x.Values(), y.Values())
	if err != nil {
		fmt.Fprintf(tw, "KS test\tskipped: %v\n", err)
	} else {
		fmt.Fprintf(tw, "KS test\tD=%.4f p=%.4f\tequal distributions %s at alpha %v\n",
			d, p, verdict(p >= *flagAlpha), *flagAlpha)
	}
	tw.Flush()
}

func verdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
