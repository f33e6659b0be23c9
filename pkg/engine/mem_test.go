//go:build test

package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/bastiangx/wordshare/pkg/report"
	"github.com/charmbracelet/log"
)

// corpus returns n sources sharing a vocabulary of vocab words.
func corpus(n, vocab int) map[string]string {
	texts := make(map[string]string, n)
	for s := 0; s < n; s++ {
		var b strings.Builder
		for w := 0; w < vocab; w++ {
			if (w+s)%3 == 0 {
				continue
			}
			fmt.Fprintf(&b, "word%d ", w)
		}
		texts[fmt.Sprintf("src%d", s)] = b.String()
	}
	return texts
}

func names(texts map[string]string) []string {
	out := make([]string, 0, len(texts))
	for i := range len(texts) {
		out = append(out, fmt.Sprintf("src%d", i))
	}
	return out
}

func TestMemoryReleasedAfterRun(t *testing.T) {
	runs := []int{10, 50, 100}

	for _, runCount := range runs {
		t.Run(fmt.Sprintf("runs_%d", runCount), func(t *testing.T) {
			runMemoryTest(t, runCount, corpus(8, 2000))
		})
	}
}

func runMemoryTest(t *testing.T, runs int, texts map[string]string) {
	quiet := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	src := memSources(texts, names(texts)...)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < runs; i++ {
		var out bytes.Buffer
		if _, err := Run(Options{Top: 0, Logger: quiet}, src, report.NewTextWriter(&out, len(texts))); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.HeapAlloc) - int64(baseline.HeapAlloc)
	goroutineDelta := finalGoroutines - baselineGoroutines

	t.Logf("runs=%d mem_delta=%d bytes goroutine_delta=%d total_alloc=%d",
		runs, memDelta, goroutineDelta, final.TotalAlloc-baseline.TotalAlloc)

	profile, err := os.Create(filepath.Join(t.TempDir(), "engine_heap.prof"))
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer profile.Close()
	if err := pprof.WriteHeapProfile(profile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}

	if memDelta > 1024*1024 {
		t.Errorf("records kept alive after Close: %d bytes", memDelta)
	}
	if goroutineDelta > 0 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
