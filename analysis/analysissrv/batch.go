package analysissrv

import (
	"context"
	"sync"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/pkg/logx"
)

// BatchItem is the outcome of one input in a batch run. Err is set when the
// input could not be decoded; analysis itself never fails.
type BatchItem struct {
	Filename string
	Result   *Result
	Err      error
}

// AnalyzeBatch analyzes many resumes concurrently over a bounded worker
// pool. Analyses are independent end-to-end, so results carry no ordering
// guarantee beyond matching each input's position.
func (s *Service) AnalyzeBatch(ctx context.Context, reqs []analysis.AnalyzeTextRequest, workers int) []BatchItem {
	if workers < 1 {
		workers = 1
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}
	logx.Infof("Starting batch analysis: %d resumes, %d workers", len(reqs), workers)

	results := make([]BatchItem, len(reqs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				req := reqs[idx]
				result, err := s.AnalyzeText(ctx, req.Text, req.Filename)
				results[idx] = BatchItem{
					Filename: req.Filename,
					Result:   result,
					Err:      err,
				}
			}
		}(i)
	}

	for idx := range reqs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	logx.Infof("Batch analysis complete: %d resumes", len(reqs))
	return results
}
