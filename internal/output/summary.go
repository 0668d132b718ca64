package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type JobReport struct {
	Name   string
	Detail string
	Err    error
	Time   time.Time
}

// Summary collects per-job outcomes for the end-of-run report.
type Summary struct {
	w       io.Writer
	reports []JobReport
}

func NewSummary(w io.Writer) *Summary {
	return &Summary{w: w}
}

func (s *Summary) Complete(name, detail string) {
	s.reports = append(s.reports, JobReport{Name: name, Detail: detail, Time: time.Now()})
}

func (s *Summary) Fail(name string, err error) {
	s.reports = append(s.reports, JobReport{Name: name, Err: err, Time: time.Now()})
}

func (s *Summary) Counts() (success, failures int) {
	for _, report := range s.reports {
		if report.Err == nil {
			success++
		} else {
			failures++
		}
	}
	return success, failures
}

func (s *Summary) Show() {
	success, failures := s.Counts()
	total := len(s.reports)
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, indent+FSuccess(fmt.Sprintf("Completed %d of %d", success, total)))
	for _, report := range s.reports {
		if report.Err == nil {
			fmt.Fprintf(s.w, "%s%s %s %s %s\n", strings.Repeat(indent, 2), FSuccess(StyleSymbols["pass"]), report.Name, StyleSymbols["arrow"], FDebug(report.Detail))
		}
	}
	if failures == 0 {
		fmt.Fprintln(s.w)
		return
	}
	fmt.Fprintln(s.w, indent+FError(fmt.Sprintf("Failed %d of %d", failures, total)))
	i := 0
	for _, report := range s.reports {
		if report.Err == nil {
			continue
		}
		i++
		fmt.Fprintf(s.w, "%s%s %s %s\n",
			strings.Repeat(indent, 2),
			FError(fmt.Sprintf("%d.", i)),
			FDebug(fmt.Sprintf("[%s]", report.Time.Format("15:04:05"))),
			FError(report.Name))
		fmt.Fprintf(s.w, "%s%s\n", strings.Repeat(indent, 3), FError(fmt.Sprintf("Error: %v", report.Err)))
	}
	fmt.Fprintln(s.w)
}
