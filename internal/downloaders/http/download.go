package rawhttp

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reporter shows the exchange to a human. It is not used for any decision.
type Reporter interface {
	ShowRequest(request string)
	ShowResponseHead(statusLine string, success bool, headers []string)
}

type Result struct {
	JobID      string
	Target     *Target
	Head       *Head
	OutputPath string
	Bytes      int64
}

// Client runs one GET per call over a fresh connection.
type Client struct {
	Opener    Opener
	Sinks     SinkFactory
	Reporter  Reporter
	Logger    zerolog.Logger
	HalfClose bool // shut down the write side once the request is flushed
}

func NewClient(logger zerolog.Logger, reporter Reporter) *Client {
	return &Client{
		Opener:   &NetOpener{},
		Sinks:    FileSinks{},
		Reporter: reporter,
		Logger:   logger,
	}
}

// Download fetches rawURL into a file named after the last path segment.
func (c *Client) Download(ctx context.Context, rawURL string) (*Result, error) {
	return c.DownloadTo(ctx, rawURL, "")
}

// DownloadTo fetches rawURL into outputPath, or into the URL's file name when
// outputPath is empty. The result is non-nil even on error and holds whatever
// was learned before the failure.
func (c *Client) DownloadTo(ctx context.Context, rawURL, outputPath string) (*Result, error) {
	return c.fetch(ctx, uuid.NewString(), rawURL, outputPath)
}

func (c *Client) fetch(ctx context.Context, jobID, rawURL, outputPath string) (*Result, error) {
	log := c.Logger.With().Str("op", "http/download").Str("job", jobID).Logger()
	result := &Result{JobID: jobID}

	target, err := Parse(rawURL)
	if err != nil {
		return result, err
	}
	result.Target = target
	if outputPath == "" {
		outputPath = target.Filename()
		if outputPath == "" {
			return result, &MalformedURLError{URL: rawURL, Reason: "path has no file name"}
		}
	}
	result.OutputPath = outputPath

	conn, err := c.Opener.Open(ctx, target)
	if err != nil {
		return result, err
	}
	// released in reverse: write end, read end, connection
	defer release(log, "connection", conn.Close)
	defer release(log, "read end", conn.CloseRead)
	defer release(log, "write end", conn.CloseWrite)
	log.Debug().Str("addr", target.Address()).Msg("connected")

	request := BuildGetRequest(target.Host, target.Path)
	if _, err := conn.Writer().WriteString(request); err != nil {
		return result, &TransportError{Op: "writing request", Err: err}
	}
	if err := conn.Writer().Flush(); err != nil {
		return result, &TransportError{Op: "flushing request", Err: err}
	}
	c.report().ShowRequest(request)
	if c.HalfClose {
		if err := conn.CloseWrite(); err != nil {
			return result, &TransportError{Op: "shutting down write side", Err: err}
		}
		log.Debug().Msg("write side shut down")
	}

	head, err := ReadHead(conn.Reader())
	if head != nil {
		result.Head = head
		c.report().ShowResponseHead(head.Status.Line, head.Status.Success, head.Headers)
	}
	if err != nil {
		return result, err
	}
	if !head.Status.Success {
		return result, &HTTPStatusFailure{Code: head.Status.Code, Phrase: head.Status.Phrase}
	}

	sink, err := c.Sinks.Create(outputPath, jobID)
	if err != nil {
		return result, err
	}
	defer release(log, "output file", sink.Close)

	result.Bytes, err = StreamPayload(conn.Reader(), sink)
	if err != nil {
		return result, err
	}
	if err := sink.Commit(); err != nil {
		return result, err
	}
	log.Info().Str("path", outputPath).Int64("bytes", result.Bytes).Msg("download complete")
	return result, nil
}

func (c *Client) report() Reporter {
	if c.Reporter == nil {
		return nopReporter{}
	}
	return c.Reporter
}

// release closes one resource; a failure is logged and does not stop the
// remaining releases.
func release(log zerolog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Debug().Err(err).Str("resource", name).Msg("release failed")
	}
}

type nopReporter struct{}

func (nopReporter) ShowRequest(string) {}
func (nopReporter) ShowResponseHead(string, bool, []string) {}
