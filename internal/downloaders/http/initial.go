package rawhttp

import (
	"context"

	"github.com/google/uuid"
	"github.com/tanq16/rawget/internal/utils"
)

// HTTPDownloader adapts Client to the scheduler's job lifecycle.
type HTTPDownloader struct {
	Client *Client
}

func (d *HTTPDownloader) ValidateJob(job *utils.FetchJob) error {
	target, err := Parse(job.URL)
	if err != nil {
		return err
	}
	if _, ok := defaultPorts[target.Protocol]; !ok {
		return &UnsupportedProtocolError{Protocol: target.Protocol}
	}
	return nil
}

func (d *HTTPDownloader) BuildJob(job *utils.FetchJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Metadata == nil {
		job.Metadata = make(map[string]any)
	}
	if job.OutputPath != "" {
		return nil
	}
	target, err := Parse(job.URL)
	if err != nil {
		return err
	}
	job.OutputPath = target.Filename()
	if job.OutputPath == "" {
		return &MalformedURLError{URL: job.URL, Reason: "path has no file name"}
	}
	return nil
}

func (d *HTTPDownloader) Download(ctx context.Context, job *utils.FetchJob) error {
	result, err := d.Client.fetch(ctx, job.ID, job.URL, job.OutputPath)
	job.Metadata["bytes"] = result.Bytes
	if result.Head != nil {
		job.Metadata["status"] = result.Head.Status.Line
	}
	return err
}
