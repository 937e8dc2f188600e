package ingest

import (
	"os"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const taskChanSize = 100

// FileJob names one file to ingest against a target book, using lineFormat
// to interpret its columns.
type FileJob struct {
	Path       string
	LineFormat string
	Book       Submitter
}

// Pool fans a batch of FileJobs out across a fixed number of goroutines,
// supervised by a tomb.Tomb: once the tomb is killed, each worker returns
// after the file it is currently ingesting. This
// is the teacher's internal/worker.go WorkerPool, which originally fanned
// TCP connections out to goroutines, repurposed here to fan ingestion files
// out instead.
type Pool struct {
	n     int
	tasks chan FileJob
}

// NewPool constructs a pool with the given number of concurrent workers.
func NewPool(size int) *Pool {
	return &Pool{
		n:     size,
		tasks: make(chan FileJob, taskChanSize),
	}
}

// AddJob enqueues a file for ingestion. Blocks if the queue is full.
func (p *Pool) AddJob(job FileJob) {
	p.tasks <- job
}

// Close signals no more jobs will be added.
func (p *Pool) Close() {
	close(p.tasks)
}

// Run starts p.n workers under t and blocks until every enqueued job has
// been processed (Close must be called once no more jobs are coming, or Run
// blocks forever waiting on the channel). Returns the set of ids allocated
// across every file, and the first ingestion error encountered, if any.
func (p *Pool) Run(t *tomb.Tomb) (map[int64]struct{}, error) {
	results := make(chan result, p.n)

	for i := 0; i < p.n; i++ {
		t.Go(func() error {
			p.worker(t, results)
			return nil
		})
	}

	allIDs := make(map[int64]struct{})
	var firstErr error
	for i := 0; i < p.n; i++ {
		r := <-results
		for id := range r.ids {
			allIDs[id] = struct{}{}
		}
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}
	return allIDs, firstErr
}

type result struct {
	ids map[int64]struct{}
	err error
}

// worker drains jobs off the task channel until it's closed or the tomb is
// dying, ingesting each file in turn.
func (p *Pool) worker(t *tomb.Tomb, results chan<- result) {
	ids := make(map[int64]struct{})
	var firstErr error

	for {
		select {
		case <-t.Dying():
			results <- result{ids: ids, err: firstErr}
			return
		case job, ok := <-p.tasks:
			if !ok {
				results <- result{ids: ids, err: firstErr}
				return
			}
			if err := p.ingestOne(job, ids); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
}

func (p *Pool) ingestOne(job FileJob, into map[int64]struct{}) error {
	file, err := os.Open(job.Path)
	if err != nil {
		log.Error().Err(err).Str("path", job.Path).Msg("unable to open ingestion file")
		return err
	}
	defer file.Close()

	lineFormat := job.LineFormat
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}

	ids, err := ReadFile(file, lineFormat, job.Book)
	for id := range ids {
		into[id] = struct{}{}
	}
	return err
}
