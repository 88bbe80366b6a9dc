package main

import (
	"runtime"
	"sync"

	"github.com/vovakirdan/lrconv/internal/level"
)

// batchItem is one decode outcome, kept in container order.
type batchItem struct {
	Raw     level.RawLevel
	Decoded *level.DecodedLevel // nil when Err is set
	Err     error
}

// decodeBatch decodes every raw level, fanning out across jobs workers
// (jobs <= 0 uses one worker per CPU). Levels are independent, so the only
// coordination is distributing indices; results come back in input order.
// Failures never stop the batch.
func decodeBatch(raws []level.RawLevel, jobs int) []batchItem {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(raws) {
		jobs = len(raws)
	}

	items := make([]batchItem, len(raws))
	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				d, err := level.Decode(raws[i])
				items[i] = batchItem{Raw: raws[i], Decoded: d, Err: err}
			}
		}()
	}
	for i := range raws {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return items
}

// reportBatch logs each failed level and returns the decoded levels plus
// success/failure counts.
func reportBatch(items []batchItem) (decoded []*level.DecodedLevel, ok, failed int) {
	for _, item := range items {
		if item.Err != nil {
			logger.Warn("skipping level", "name", item.Raw.Name, "error", item.Err)
			failed++
			continue
		}
		if item.Decoded.Stats.DroppedTiles > 0 {
			logger.Debug("dropped invalid tile ids",
				"name", item.Raw.Name,
				"count", item.Decoded.Stats.DroppedTiles)
		}
		decoded = append(decoded, item.Decoded)
		ok++
	}
	return decoded, ok, failed
}
