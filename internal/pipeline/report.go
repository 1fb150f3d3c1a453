package pipeline

import "fmt"

// FileResult records the outcome for one source file: the output path on
// success, or the reason the file failed. Failures never abort the batch.
type FileResult struct {
	Source string
	Output string
	Err    error
}

// Failed reports whether this file ended in any of the failure classes
// (extraction, remote call, unrepairable output, write).
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// BatchReport aggregates per-file results for one run.
type BatchReport struct {
	Results []FileResult
}

func (b *BatchReport) add(r FileResult) {
	b.Results = append(b.Results, r)
}

// Processed is the total number of files attempted.
func (b *BatchReport) Processed() int {
	return len(b.Results)
}

// Failed counts files that ended in failure.
func (b *BatchReport) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// Summary renders a one-line batch outcome.
func (b *BatchReport) Summary() string {
	return fmt.Sprintf("%d processed, %d generated, %d failed",
		b.Processed(), b.Processed()-b.Failed(), b.Failed())
}
