//go:build ignore

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/agenthands/latex2mml"
	"github.com/agenthands/latex2mml/pkg/compiler/diag"
)

type Stats struct {
	Pass     int
	Fail     int
	Bytes    int
	ByKind   map[diag.Kind]int
	Duration time.Duration
}

func main() {
	cases := []string{
		`x^2 + y^2 = z^2`,
		`\sum_{i=1}^{n} i = \frac{n(n+1)}{2}`,
		`\int_0^\infty e^{-x^2}\,dx = \frac{\sqrt\pi}{2}`,
		`\left( \frac{a}{b} \middle| c \right)`,
		`\begin{pmatrix} a & b \\ c & d \end{pmatrix}`,
		`f(x) = \begin{cases} 1 & x \geq 0 \\ 0 & \text{otherwise} \end{cases}`,
		`\lim_{x \to 0} \frac{\sin x}{x} = 1`,
		`a \not= b, \; 3.14. \ldots`,
		`\sqrt[3]{x'' + y'}`,
		// Malformed inputs are part of the load.
		`\frac{1}{`,
		`\begin{matrix} a \end{cases}`,
		`\left x`,
		`\unknown`,
		`x_1_2`,
	}

	iterations := 2000
	workers := runtime.GOMAXPROCS(0)
	if len(os.Args) > 1 {
		fmt.Sscanf(os.Args[1], "%d", &iterations)
	}

	fmt.Printf("RUNNING %d CONVERSIONS ON %d WORKERS\n", iterations*len(cases), workers)
	fmt.Println("==================================================================")

	jobs := make(chan string)
	results := make([]Stats, workers)
	var wg sync.WaitGroup
	start := time.Now()
	for w := range workers {
		wg.Add(1)
		go func(s *Stats) {
			defer wg.Done()
			s.ByKind = make(map[diag.Kind]int)
			for src := range jobs {
				out, err := latex2mml.Convert(src, latex2mml.Options{})
				var le *diag.LatexError
				switch {
				case err == nil:
					s.Pass++
					s.Bytes += len(out)
				case errors.As(err, &le):
					s.Fail++
					s.ByKind[le.Kind]++
				default:
					fmt.Fprintln(os.Stderr, "unexpected error:", err)
					os.Exit(1)
				}
			}
		}(&results[w])
	}
	for range iterations {
		for _, src := range cases {
			jobs <- src
		}
	}
	close(jobs)
	wg.Wait()

	total := Stats{ByKind: make(map[diag.Kind]int), Duration: time.Since(start)}
	for _, s := range results {
		total.Pass += s.Pass
		total.Fail += s.Fail
		total.Bytes += s.Bytes
		for k, n := range s.ByKind {
			total.ByKind[k] += n
		}
	}
	printFinalReport(&total, iterations*len(cases))
}

func printFinalReport(s *Stats, total int) {
	fmt.Printf("\nFINAL STRESS REPORT\n")
	fmt.Println("------------------------------------------------------------------")
	fmt.Printf("%-25s | %-15d\n", "Converted", s.Pass)
	fmt.Printf("%-25s | %-15d\n", "Rejected", s.Fail)
	for k, n := range s.ByKind {
		fmt.Printf("  %-23s | %-15d\n", k, n)
	}
	fmt.Println("------------------------------------------------------------------")
	fmt.Printf("%-25s | %-15s\n", "Wall time", s.Duration.Round(time.Millisecond))
	fmt.Printf("%-25s | %-15.0f\n", "Conversions / s", float64(total)/s.Duration.Seconds())
	fmt.Printf("%-25s | %-15d\n", "MathML bytes", s.Bytes)
	fmt.Println("------------------------------------------------------------------")
}
