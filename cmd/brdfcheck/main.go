// brdfcheck validates BSNP snapshot files for structural correctness.
//
// Usage:
//
//	brdfcheck [-q|--quiet] [-s|--strict] <filename> [<filename> ...]
//
// Options:
//
//	-q, --quiet   Only output errors. Exit code indicates pass/fail.
//	-s, --strict  Also report recommendations (angle coverage, wavelength order).
//	-h, --help    Show this help message.
//	--version     Show version information.
//
// Exit codes:
//
//	0: All files valid
//	1: One or more files invalid
//	2: Error (file not found, etc.)
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mrjoshuak/go-brdf/brdf"
	"github.com/mrjoshuak/go-brdf/snapshot"
)

const version = "1.0.0"

// Issue is a single validation problem found in a file.
type Issue struct {
	Severity string // "error" or "warning"
	Message  string
}

// Result collects the validation results for one file.
type Result struct {
	Filename string
	Issues   []Issue
	Checks   []string
}

// IsValid reports whether the file passed (warnings are ok).
func (r *Result) IsValid() bool {
	for _, issue := range r.Issues {
		if issue.Severity == "error" {
			return false
		}
	}
	return true
}

func (r *Result) addError(format string, args ...any) {
	r.Issues = append(r.Issues, Issue{"error", fmt.Sprintf(format, args...)})
}

func (r *Result) addWarning(format string, args ...any) {
	r.Issues = append(r.Issues, Issue{"warning", fmt.Sprintf(format, args...)})
}

func main() {
	quiet := false
	strict := false
	files := []string{}

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-q", "--quiet":
			quiet = true
		case "-s", "--strict":
			strict = true
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		case "--version":
			fmt.Printf("brdfcheck version %s\n", version)
			fmt.Println("Part of go-brdf - sampled surface-reflectance library")
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input files specified")
		printUsage()
		os.Exit(2)
	}

	validCount := 0
	errorOccurred := false

	for _, filename := range files {
		result, err := validateFile(filename, strict)
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "%s: error: %v\n", filename, err)
			}
			errorOccurred = true
			continue
		}

		if result.IsValid() {
			validCount++
		}

		if !quiet {
			printResult(result)
		} else if !result.IsValid() {
			for _, issue := range result.Issues {
				if issue.Severity == "error" {
					fmt.Fprintf(os.Stderr, "%s: %s\n", filename, issue.Message)
				}
			}
		}
	}

	if len(files) > 1 && !quiet {
		fmt.Printf("\n%d of %d files valid\n", validCount, len(files))
	}

	switch {
	case errorOccurred:
		os.Exit(2)
	case validCount < len(files):
		os.Exit(1)
	}
}

func validateFile(filename string, strict bool) (*Result, error) {
	result := &Result{Filename: filename}

	snap, err := snapshot.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		result.addError("decode failed: %v", err)
		return result, nil
	}
	result.Checks = append(result.Checks, "container decoding")

	switch snap.Kind {
	case snapshot.KindBrdf:
		checkBrdf(result, snap.Brdf, strict)
	case snapshot.KindSampleSet2D:
		checkSampleSet2D(result, snap.SampleSet2D, strict)
	}
	return result, nil
}

func checkBrdf(result *Result, b *brdf.Brdf, strict bool) {
	ss := b.SampleSet()
	if err := ss.Validate(); err != nil {
		result.addError("invariant violation: %v", err)
	}
	result.Checks = append(result.Checks, "sample-set invariants")

	checkSpectraFinite(result, func(yield func(brdf.Spectrum)) {
		for i0 := 0; i0 < ss.NumAngles(0); i0++ {
			for i1 := 0; i1 < ss.NumAngles(1); i1++ {
				for i2 := 0; i2 < ss.NumAngles(2); i2++ {
					for i3 := 0; i3 < ss.NumAngles(3); i3++ {
						yield(ss.Spectrum(i0, i1, i2, i3))
					}
				}
			}
		}
	})

	if strict {
		max := b.CoordinateSystem().MaxAngles()
		for dim := 0; dim < 4; dim++ {
			n := ss.NumAngles(dim)
			if n < 2 {
				continue
			}
			if ss.Angle(dim, 0) > 0 {
				result.addWarning("angle%d starts at %g, not 0", dim, ss.Angle(dim, 0))
			}
			if ss.Angle(dim, n-1) < max[dim] {
				result.addWarning("angle%d ends at %g, below the range maximum %g", dim, ss.Angle(dim, n-1), max[dim])
			}
		}
		checkWavelengthOrder(result, ss)
		result.Checks = append(result.Checks, "angle coverage")
	}
}

func checkSampleSet2D(result *Result, ss *brdf.SampleSet2D, strict bool) {
	if err := ss.Validate(); err != nil {
		result.addError("invariant violation: %v", err)
	}
	result.Checks = append(result.Checks, "sample-set invariants")

	checkSpectraFinite(result, func(yield func(brdf.Spectrum)) {
		for ti := 0; ti < ss.NumTheta(); ti++ {
			for pi := 0; pi < ss.NumPhi(); pi++ {
				yield(ss.Spectrum(ti, pi))
			}
		}
	})

	if strict && ss.ColorModel() == brdf.Spectral {
		for i := 1; i < ss.NumWavelengths(); i++ {
			if ss.Wavelength(i) <= ss.Wavelength(i-1) {
				result.addWarning("wavelengths not strictly increasing at index %d", i)
				break
			}
		}
	}
}

func checkWavelengthOrder(result *Result, ss *brdf.SampleSet) {
	if ss.ColorModel() != brdf.Spectral {
		return
	}
	for i := 1; i < ss.NumWavelengths(); i++ {
		if ss.Wavelength(i) <= ss.Wavelength(i-1) {
			result.addWarning("wavelengths not strictly increasing at index %d", i)
			return
		}
	}
}

func checkSpectraFinite(result *Result, each func(func(brdf.Spectrum))) {
	bad := 0
	negative := 0
	each(func(sp brdf.Spectrum) {
		for _, v := range sp {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad++
			} else if v < 0 {
				negative++
			}
		}
	})
	if bad > 0 {
		result.addError("%d non-finite spectrum values", bad)
	}
	if negative > 0 {
		result.addWarning("%d negative spectrum values", negative)
	}
	result.Checks = append(result.Checks, "spectrum values")
}

func printResult(result *Result) {
	if result.IsValid() && len(result.Issues) == 0 {
		fmt.Printf("%s: OK (%d checks)\n", result.Filename, len(result.Checks))
		return
	}
	status := "OK with warnings"
	if !result.IsValid() {
		status = "INVALID"
	}
	fmt.Printf("%s: %s\n", result.Filename, status)
	for _, issue := range result.Issues {
		fmt.Printf("  %s: %s\n", issue.Severity, issue.Message)
	}
}

func printUsage() {
	fmt.Println("Usage: brdfcheck [-q|--quiet] [-s|--strict] <filename> [<filename> ...]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -q, --quiet   Only output errors. Exit code indicates pass/fail.")
	fmt.Println("  -s, --strict  Also report recommendations.")
	fmt.Println("  -h, --help    Show this help message.")
	fmt.Println("  --version     Show version information.")
}
