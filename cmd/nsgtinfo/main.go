// Command nsgtinfo prints the band table of a non-stationary Gabor
// transform configuration.
//
// Usage:
//
//	nsgtinfo [flags]
//
// Examples:
//
//	nsgtinfo
//	nsgtinfo -scale vqlog -gamma 15 -bins 96
//	nsgtinfo -fmin 32.7 -fmax 16744 -bins 108 -reduced 1
//	nsgtinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-nsgt/nsgt"
	"github.com/cwbudde/algo-nsgt/scale"
)

func main() {
	family := flag.String("scale", "cqlog", "frequency scale family (see -list)")
	fmin := flag.Float64("fmin", 32.7, "lowest band center in Hz")
	fmax := flag.Float64("fmax", 16744, "highest band center in Hz")
	bins := flag.Int("bins", 50, "number of scale bands")
	gamma := flag.Float64("gamma", 25, "bandwidth offset in Hz (vqlog only)")
	fs := flag.Float64("fs", 44100, "sample rate in Hz")
	length := flag.Int("length", 44100, "signal length in samples (0 = suggested for the scale)")
	matrix := flag.Bool("matrix", false, "force all bands to one coefficient length")
	reduced := flag.Int("reduced", 0, "boundary bands trimmed from each end (0, 1 or 2)")
	complexMode := flag.Bool("complex", false, "full complex analysis instead of real")
	list := flag.Bool("list", false, "list supported scale families")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nsgtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the band table and summary of an NSGT configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nsgtinfo -scale mel -bins 64\n")
		fmt.Fprintf(os.Stderr, "  nsgtinfo -fmin 32.7 -fmax 16744 -bins 108 -reduced 1\n")
		fmt.Fprintf(os.Stderr, "  nsgtinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range scale.Families() {
			fmt.Println(name)
		}
		return
	}

	var opts []scale.Option
	if *family == "vqlog" {
		opts = append(opts, scale.WithGamma(*gamma))
	}
	scl, err := scale.New(*family, *fmin, *fmax, *bins, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ls := *length
	if ls == 0 {
		ls = scale.SuggestedLength(scl, *fs)
	}

	var topts []nsgt.Option
	if *matrix {
		topts = append(topts, nsgt.WithMatrixForm())
	}
	if *reduced != 0 {
		topts = append(topts, nsgt.WithReducedForm(*reduced))
	}
	if *complexMode {
		topts = append(topts, nsgt.WithComplex())
	}
	t, err := nsgt.New(scl, *fs, ls, topts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printBands(t)
	printSummary(t, *family, ls)
}

func printBands(t *nsgt.Transform) {
	freqs := t.Frequencies()
	lengths := t.WindowLengths()
	lo, hi := t.ActiveRange()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Band\tCenter [Hz]\tQ\tM\tENBW [bins]\tActive\t\n")
	fmt.Fprintf(tw, "----\t-----------\t-\t-\t-----------\t------\t\n")
	for k := range freqs {
		coeffs := window.Generate(window.TypeHann, lengths[k], window.WithPeriodic())
		a := window.Analyze(coeffs)

		// Effective Q from the band's window span on the padded axis.
		bw := float64(lengths[k]) * t.SampleRate() / float64(t.PaddedLength())
		q := freqs[k] / bw

		active := ""
		if k >= lo && k < hi {
			active = "*"
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%d\t%.4f\t%s\t\n", k, freqs[k], q, lengths[k], a.ENBW, active)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSummary(t *nsgt.Transform, family string, ls int) {
	fmt.Println()
	fmt.Printf("scale:              %s\n", family)
	fmt.Printf("sample rate:        %g Hz\n", t.SampleRate())
	fmt.Printf("signal length:      %d samples\n", ls)
	fmt.Printf("padded length:      %d bins\n", t.PaddedLength())
	fmt.Printf("bands:              %d built, %d active\n", t.Bands(), t.FBinsActual())
	fmt.Printf("coefficients:       %d per band (factor %.4f)\n", t.Ncoefs(), t.CoefFactor())
	if narrow := t.NarrowBands(); len(narrow) > 0 {
		marks := make([]string, len(narrow))
		for i, f := range narrow {
			marks[i] = fmt.Sprintf("%.1f", f)
		}
		fmt.Printf("under-resolved:     %s Hz (signal too short, see scale.SuggestedLength)\n", strings.Join(marks, ", "))
	}
}
