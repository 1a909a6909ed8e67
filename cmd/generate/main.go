package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/sudoku/generate"
)

// PuzzleRecord is one generated puzzle: its givens and the difficulty and
// category it scored. The solution is not stored.
type PuzzleRecord struct {
	Givens     string `json:"givens"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

// PuzzleFile is the top-level structure for the JSON output file.
type PuzzleFile struct {
	Version int            `json:"version"`
	Count   int            `json:"count"`
	Puzzles []PuzzleRecord `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 1000, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	category := flag.String("category", "basic", "target category (trivial, basic, intermediate, tough, diabolical, extreme, master, grandmaster)")
	maxAttempts := flag.Int("max-attempts", 60, "max local-search attempts per puzzle")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d %s puzzles with %d workers...\n", *count, *category, *workers)
	start := time.Now()

	records := make([]PuzzleRecord, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(*count-int(g)) / rate
				fmt.Printf("  progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				records[idx] = generatePuzzle(core.Category(*category), seed, *maxAttempts)
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := PuzzleFile{Version: 1, Count: *count, Puzzles: records}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("done! file size: %.2f MB\n", sizeMB)
}

func generatePuzzle(category core.Category, seed int64, maxAttempts int) PuzzleRecord {
	cand, err := generate.GenerateByCategory(category, generate.Options{Seed: &seed, MaxAttempts: maxAttempts})
	if err != nil {
		return PuzzleRecord{}
	}

	givensStr, _ := format.FormatGridString(cand.Puzzle.Digits())

	return PuzzleRecord{
		Givens:     givensStr,
		Difficulty: cand.Difficulty,
		Category:   string(cand.Category),
	}
}
