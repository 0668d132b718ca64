package utils

import "context"

type Downloader interface {
	ValidateJob(job *FetchJob) error
	BuildJob(job *FetchJob) error
	Download(ctx context.Context, job *FetchJob) error
}

type FetchJob struct {
	ID         string
	JobType    string
	URL        string
	OutputPath string
	Metadata   map[string]any
}

type DownloadEntry struct {
	OutputPath string `yaml:"op"`
	URL        string `yaml:"link"`
}
