package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tanq16/rawget/internal/output"
	"github.com/tanq16/rawget/internal/utils"
)

var ErrJobsFailed = errors.New("one or more jobs failed")

// Scheduler runs jobs one at a time, in order. There is no parallelism:
// each job holds at most one connection and one output file.
type Scheduler struct {
	registry map[string]utils.Downloader
	logger   zerolog.Logger
	summary  *output.Summary
}

func New(logger zerolog.Logger, summary *output.Summary) *Scheduler {
	return &Scheduler{
		registry: make(map[string]utils.Downloader),
		logger:   utils.ComponentLogger(logger, "scheduler"),
		summary:  summary,
	}
}

func (s *Scheduler) Register(jobType string, downloader utils.Downloader) {
	s.registry[jobType] = downloader
}

func (s *Scheduler) Run(ctx context.Context, jobs []utils.FetchJob) error {
	failed := 0
	for i := range jobs {
		job := &jobs[i]
		if err := s.process(ctx, job); err != nil {
			failed++
			s.logger.Error().Err(err).Str("url", job.URL).Msg("job failed")
			s.summary.Fail(job.URL, err)
			continue
		}
		bytes, _ := job.Metadata["bytes"].(int64)
		s.summary.Complete(job.URL, fmt.Sprintf("%s (%s)", job.OutputPath, utils.FormatBytes(uint64(bytes))))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, failed, len(jobs))
	}
	return nil
}

func (s *Scheduler) process(ctx context.Context, job *utils.FetchJob) error {
	downloader, exists := s.registry[job.JobType]
	if !exists {
		return fmt.Errorf("unknown job type: %s", job.JobType)
	}
	if err := downloader.ValidateJob(job); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := downloader.BuildJob(job); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	s.logger.Debug().Str("job", job.ID).Str("url", job.URL).Str("output", job.OutputPath).Msg("starting job")
	if err := downloader.Download(ctx, job); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}
