// Command fftinfo prints the bin layout of an FFT analysis at a given
// sampling rate, together with the sine analysis window's noise bandwidth.
//
// Usage:
//
//	fftinfo [flags]
//
// Examples:
//
//	fftinfo -size 1024 -rate 250
//	fftinfo -size 256 -rate 500 -bins 8
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/fourier"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

func main() {
	size := flag.Int("size", 1024, "FFT size (power of two)")
	rate := flag.Float64("rate", 250, "sampling rate in Hz")
	bins := flag.Int("bins", 16, "number of bins to list (0 = all)")
	flag.Parse()

	if err := run(*size, *rate, *bins); err != nil {
		fmt.Fprintf(os.Stderr, "fftinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(size int, rate float64, bins int) error {
	if _, err := fourier.NewPlan(size); err != nil {
		return err
	}

	if rate <= 0 {
		return fmt.Errorf("rate must be > 0: %g", rate)
	}

	resolution := rate / float64(size)
	freqs := fourier.RFreqs(size, rate)

	fmt.Printf("size %d, rate %g Hz, resolution %g Hz/bin, %d real bins\n\n",
		size, rate, resolution, len(freqs))

	limit := len(freqs)
	if bins > 0 && bins < limit {
		limit = bins
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "bin\tfrequency [Hz]\t")
	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "%d\t%.4f\t\n", i, freqs[i])
	}

	if limit < len(freqs) {
		fmt.Fprintf(w, "...\t(%d more)\t\n", len(freqs)-limit)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	sine, err := window.Sine(size)
	if err != nil {
		return err
	}

	enbw, err := window.EquivalentNoiseBandwidth(sine)
	if err != nil {
		return err
	}

	fmt.Printf("\nsine window ENBW: %.4f bins (%.4f Hz)\n", enbw, enbw*resolution)

	return nil
}
