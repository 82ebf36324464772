package export

import (
	"fmt"
	"io"
	"log"

	"PaintPad/internal/state"

	"golang.org/x/sync/errgroup"
)

// Format selects the file type an export job writes.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatPDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Job is one export request. Segments must be a snapshot the caller no
// longer mutates; Dest is closed when the job finishes.
type Job struct {
	Name     string
	Format   Format
	Segments []state.Segment
	Dest     io.WriteCloser
	Info     PDFInfo
}

// Exporter runs export jobs off the caller's goroutine. Jobs cannot be
// cancelled and are never retried.
type Exporter struct {
	Width, Height int

	// Notify is called once per job, from the job's goroutine, with nil or
	// an error wrapping ErrEncoding, ErrWrite or ErrPermissionDenied.
	Notify func(job Job, err error)

	g errgroup.Group
}

// NewExporter returns an exporter for the fixed export canvas size.
func NewExporter(notify func(Job, error)) *Exporter {
	return &Exporter{Width: CanvasWidth, Height: CanvasHeight, Notify: notify}
}

// Submit starts job in the background and returns immediately.
func (e *Exporter) Submit(job Job) {
	log.Printf("[EXPORT] Queued %s (%s, %d segments)", job.Name, job.Format, len(job.Segments))
	e.g.Go(func() error {
		err := e.run(job)
		if err != nil {
			log.Printf("[EXPORT] %s failed: %v", job.Name, err)
		} else {
			log.Printf("[EXPORT] %s written", job.Name)
		}
		if e.Notify != nil {
			e.Notify(job, err)
		}
		return nil
	})
}

// Wait blocks until every submitted job has finished. Jobs report their
// outcome through Notify only; the group itself never carries an error.
func (e *Exporter) Wait() {
	_ = e.g.Wait()
}

func (e *Exporter) run(job Job) (err error) {
	if job.Dest == nil {
		return fmt.Errorf("%w: no destination", ErrWrite)
	}
	defer func() {
		if cerr := job.Dest.Close(); cerr != nil && err == nil {
			err = WriteError(cerr)
		}
	}()

	switch job.Format {
	case FormatPNG:
		return EncodePNG(job.Dest, Rasterize(job.Segments, e.Width, e.Height))
	case FormatPDF:
		return WritePDF(job.Dest, job.Segments, e.Width, e.Height, job.Info)
	}
	return fmt.Errorf("%w: unknown format %s", ErrEncoding, job.Format)
}
