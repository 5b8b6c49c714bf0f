// Command ndconv compares the direct and FFT convolution paths.
//
// Usage:
//
//	ndconv [flags] [HxW ...]
//
// Each argument is a filter size. The target is arange(height*width)
// reshaped to (height, width) and every filter is arange(h*w) reshaped to
// (h, w). Without arguments the 3x3, 5x5, 2x3 and 3x2 filters are used.
//
// Examples:
//
//	ndconv
//	ndconv -height 64 -width 64 3x3 7x7
//	ndconv -dtype float32 -print 3x3
//	ndconv -cpu
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-nd/nd"
)

var defaultFilters = []string{"3x3", "5x5", "2x3", "3x2"}

func main() {
	height := flag.Int("height", 16, "target height")
	width := flag.Int("width", 16, "target width")
	dtype := flag.String("dtype", "float64", "target dtype (int8 ... float64, array)")
	printOut := flag.Bool("print", false, "print the direct convolution result")
	showCPU := flag.Bool("cpu", false, "print detected SIMD features and exit")
	generic := flag.Bool("generic", false, "disable SIMD kernels")
	verbose := flag.Bool("v", false, "log path selection at debug level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ndconv [flags] [HxW ...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs direct and FFT convolution on an arange target and reports\n")
		fmt.Fprintf(os.Stderr, "how far the two paths disagree.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ndconv\n")
		fmt.Fprintf(os.Stderr, "  ndconv -height 64 -width 64 3x3 7x7\n")
		fmt.Fprintf(os.Stderr, "  ndconv -cpu\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	}
	if *showCPU {
		printCPU(cpu.DetectFeatures())
		return
	}

	dt, err := nd.ParseDType(*dtype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = defaultFilters
	}
	filters, err := parseFilters(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	h, w := *height, *width
	target, err := nd.Arange(h*w).AsType(dt).Reshape(h, w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results := make([]result, 0, len(filters))
	for _, f := range filters {
		r, err := compare(target, f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: filter %dx%d: %v\n", f[0], f[1], err)
			os.Exit(1)
		}
		results = append(results, r)
	}
	printResults(results)

	if *printOut {
		for _, r := range results {
			fmt.Printf("\n%dx%d:\n%v\n", r.filter[0], r.filter[1], r.direct)
		}
	}
}

func parseFilters(names []string) ([][2]int, error) {
	out := make([][2]int, 0, len(names))
	for _, name := range names {
		h, w, ok := strings.Cut(strings.ToLower(strings.TrimSpace(name)), "x")
		if !ok {
			return nil, fmt.Errorf("filter %q: want HxW", name)
		}
		fh, err := strconv.Atoi(h)
		if err != nil || fh < 1 {
			return nil, fmt.Errorf("filter %q: invalid height", name)
		}
		fw, err := strconv.Atoi(w)
		if err != nil || fw < 1 {
			return nil, fmt.Errorf("filter %q: invalid width", name)
		}
		out = append(out, [2]int{fh, fw})
	}
	return out, nil
}

type result struct {
	filter     [2]int
	shape      []int
	direct     *nd.NdArray
	maxDiff    float64
	directTime time.Duration
	fftTime    time.Duration
}

func compare(target *nd.NdArray, size [2]int) (result, error) {
	filter, err := nd.Arange(size[0]*size[1]).Reshape(size[0], size[1])
	if err != nil {
		return result{}, err
	}

	start := time.Now()
	direct, err := nd.Convolve(target, filter)
	if err != nil {
		return result{}, err
	}
	directTime := time.Since(start)

	start = time.Now()
	viaFFT, err := nd.FFTConvolve(target, filter)
	if err != nil {
		return result{}, err
	}
	fftTime := time.Since(start)

	diff, err := direct.Subtract(viaFFT)
	if err != nil {
		return result{}, err
	}
	return result{
		filter:     size,
		shape:      direct.Shape(),
		direct:     direct,
		maxDiff:    vecmath.MaxAbs(diff.Data()),
		directTime: directTime,
		fftTime:    fftTime,
	}, nil
}

func printResults(results []result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tOutput\tMax |direct-fft|\tConvolve\tFFTConvolve\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t---------------\t--------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%dx%d\t%v\t%.3g\t%v\t%v\n",
			r.filter[0], r.filter[1],
			r.shape,
			r.maxDiff,
			r.directTime,
			r.fftTime,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printCPU(f cpu.Features) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		name string
		ok   bool
	}{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"NEON", f.HasNEON},
		{"forced generic", f.ForceGeneric},
	}
	_, _ = fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%t\n", r.name, r.ok)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
