package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradeshot/models"
	"tradeshot/pkg/extract"
)

// global flags (parsed in main)
var verbose bool

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// processor holds the per-batch state shared by all workers. Everything
// here is read-only during the run except the optional ledger handle.
type processor struct {
	dir        string
	date       string
	prefix     string
	dryRun     bool
	keepFailed bool
	batch      int
	pipe       *extract.Pipeline
	db         *gorm.DB
}

// Main: scans a directory of trading screenshots, extracts (company,
// strike, option type, time) per image and files each into
// "{Strike} {OptionType} {Company}/{Date} {Company} {Strike} {OptionType} {Time}".
func main() {
	dirFlag := flag.String("dir", ".", "directory of screenshots to process")
	dateFlag := flag.String("date", "", "batch date DD-MM-YYYY (required unless -dry-run)")
	companiesFlag := flag.String("companies", "companies.txt", "known ticker symbols, one per line")
	prefixFlag := flag.String("prefix", "screenshot", "only process files starting with this prefix (case-insensitive, empty = all)")
	workers := flag.Int("workers", 0, "worker pool size (default NumCPU)")
	batch := flag.Int("batch", 1024, "max files buffered ahead of the worker pool")
	watch := flag.Bool("watch", false, "watch directory for new screenshots")
	dryRun := flag.Bool("dry-run", false, "extract and report only; no renames, no ledger writes")
	keepFailed := flag.Bool("keep-failed", false, "leave rejected files in place instead of moving them to rejected/")
	flag.BoolVar(&verbose, "verbose", false, "verbose per-file logging")
	flag.Parse()

	if *dateFlag == "" && !*dryRun {
		log.Fatalf("-date is required (DD-MM-YYYY), e.g. -date 07-08-2025")
	}
	if *dateFlag != "" {
		if _, err := time.Parse("02-01-2006", *dateFlag); err != nil {
			log.Fatalf("invalid -date %q, expected DD-MM-YYYY: %v", *dateFlag, err)
		}
	}

	companies, err := extract.LoadCompanySet(*companiesFlag)
	if err != nil {
		log.Fatalf("company list: %v", err)
	}
	log.Printf("Loaded %d company symbols", companies.Len())

	p := &processor{
		dir:        *dirFlag,
		date:       *dateFlag,
		prefix:     strings.ToLower(*prefixFlag),
		dryRun:     *dryRun,
		keepFailed: *keepFailed,
		batch:      *batch,
		pipe:       extract.NewPipeline(extract.DefaultOptions(), companies, extract.NewTesseractDetector()),
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" && !*dryRun {
		p.db = mustOpenLedger(dsn)
	}

	files := p.listScreenshots()
	log.Printf("Scanning %d files (workers=%d)", len(files), effectiveWorkers(*workers))
	sum := runWorkerPool(p, files, effectiveWorkers(*workers))
	sum.print()

	if *watch {
		if err := watchDirectory(p, effectiveWorkers(*workers)); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

func mustOpenLedger(dsn string) *gorm.DB {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Shot{}); err != nil {
		log.Printf("migration warning (shots): %v", err)
	}
	return gdb
}

func (p *processor) listScreenshots() []string {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !p.isCandidate(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func (p *processor) isCandidate(name string) bool {
	low := strings.ToLower(name)
	if p.prefix != "" && !strings.HasPrefix(low, p.prefix) {
		return false
	}
	switch filepath.Ext(low) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	}
	return false
}

// runWorkerPool fans filenames out to workers and funnels outcomes back
// to a single aggregator; per-file failures never abort the batch.
func runWorkerPool(p *processor, initial []string, workers int, extraCh ...<-chan string) *batchSummary {
	buf := p.batch
	if buf <= 0 {
		buf = 1024
	}
	fileCh := make(chan string, buf)
	resCh := make(chan outcome, 256)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				resCh <- p.processOne(name)
			}
		}()
	}
	go func() {
		for _, f := range initial {
			fileCh <- f
		}
		// relay from extra channels if provided (watch mode)
		for _, ch := range extraCh {
			go func(c <-chan string) {
				for n := range c {
					fileCh <- n
				}
			}(ch)
		}
		// scan-only runs close when the initial list is fed
		if len(extraCh) == 0 {
			close(fileCh)
		}
	}()
	go func() {
		wg.Wait()
		close(resCh)
	}()

	sum := newBatchSummary()
	for o := range resCh {
		p.report(o)
		sum.add(o)
	}
	return sum
}

// processOne runs the pipeline for a single file and applies the filing
// outcome. Never panics the pool; every path returns an outcome.
func (p *processor) processOne(name string) outcome {
	path := filepath.Join(p.dir, name)
	res, err := p.pipe.ExtractRecord(path, p.date)
	if err != nil {
		return p.settleFailure(name, models.ShotStatusFailed, err.Error())
	}
	if res.Rejection != nil {
		o := p.settleFailure(name, models.ShotStatusRejected, res.Rejection.Error())
		o.Strategy = res.Strategy
		o.Confidence = res.Confidence
		return o
	}
	o := outcome{
		File:       name,
		Status:     models.ShotStatusOK,
		Record:     res.Record,
		Strategy:   res.Strategy,
		Confidence: res.Confidence,
	}
	if p.dryRun {
		return o
	}
	newRel, err := fileRecord(p.dir, name, res.Record)
	if err != nil {
		return p.settleFailure(name, models.ShotStatusFailed, "file move: "+err.Error())
	}
	o.NewPath = newRel
	return o
}

// settleFailure builds a rejected/failed outcome and quarantines the
// source file unless the operator opted out.
func (p *processor) settleFailure(name, status, reason string) outcome {
	o := outcome{File: name, Status: status, Reason: reason}
	if p.dryRun || p.keepFailed {
		return o
	}
	if err := moveToRejected(p.dir, name); err != nil {
		logV("WARN quarantine %s: %v", name, err)
	} else {
		o.NewPath = filepath.Join(rejectedDir, name)
	}
	return o
}

// report logs one outcome and records it in the ledger when configured.
func (p *processor) report(o outcome) {
	switch o.Status {
	case models.ShotStatusOK:
		log.Printf("SUCCESS %s -> %s (strategy=%s conf=%.2f)", o.File, o.NewPath, o.Strategy, o.Confidence)
	case models.ShotStatusRejected:
		log.Printf("REJECTED %s: %s", o.File, o.Reason)
	default:
		log.Printf("FAILED %s: %s", o.File, o.Reason)
	}
	if p.db == nil {
		return
	}
	row := models.Shot{
		BatchDate:  p.date,
		FileName:   o.File,
		NewName:    o.NewPath,
		Status:     o.Status,
		Reason:     o.Reason,
		Strategy:   o.Strategy,
		Confidence: o.Confidence,
	}
	if o.Record != nil {
		row.Company = o.Record.Company
		row.Strike = o.Record.Strike
		row.OptionType = o.Record.OptionType
		row.TradeTime = o.Record.Time
		row.Folder = o.Record.Folder()
	}
	if err := p.db.Create(&row).Error; err != nil {
		if isUniqueConstraintError(err) {
			logV("SKIP ledger row exists %s", o.File)
		} else {
			log.Printf("ERROR ledger write %s: %v", o.File, err)
		}
	}
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}

// watchDirectory feeds newly created screenshots into the pool after a
// short debounce so half-written files are not picked up.
func watchDirectory(p *processor, workers int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(p.dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", p.dir)

	fileCh := make(chan string, 256)
	go func() {
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					close(fileCh)
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create {
					name := filepath.Base(ev.Name)
					if !p.isCandidate(name) {
						continue
					}
					pending[name] = time.Now()
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond { // stable
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					close(fileCh)
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()

	runWorkerPool(p, nil, workers, fileCh)
	return nil
}
