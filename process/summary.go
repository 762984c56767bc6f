package main

import (
	"log"

	"tradeshot/models"
	"tradeshot/pkg/extract"
)

// outcome is what one worker reports back for one file.
type outcome struct {
	File       string
	Status     string // models.ShotStatus*
	Reason     string
	NewPath    string
	Strategy   string
	Confidence float64
	Record     *extract.TradeRecord
}

// batchSummary accumulates outcomes on the aggregator goroutine only;
// no locking needed.
type batchSummary struct {
	ok       []outcome
	rejected []outcome
	failed   []outcome
}

func newBatchSummary() *batchSummary {
	return &batchSummary{}
}

func (s *batchSummary) add(o outcome) {
	switch o.Status {
	case models.ShotStatusOK:
		s.ok = append(s.ok, o)
	case models.ShotStatusRejected:
		s.rejected = append(s.rejected, o)
	default:
		s.failed = append(s.failed, o)
	}
}

func (s *batchSummary) total() int {
	return len(s.ok) + len(s.rejected) + len(s.failed)
}

// print writes the per-batch report: every file accounted for, no silent
// drops.
func (s *batchSummary) print() {
	log.Printf("Batch done: processed=%d ok=%d rejected=%d failed=%d",
		s.total(), len(s.ok), len(s.rejected), len(s.failed))
	for _, o := range s.ok {
		log.Printf("  ok       %s -> %s", o.File, o.NewPath)
	}
	for _, o := range s.rejected {
		log.Printf("  rejected %s (%s)", o.File, o.Reason)
	}
	for _, o := range s.failed {
		log.Printf("  failed   %s (%s)", o.File, o.Reason)
	}
}
