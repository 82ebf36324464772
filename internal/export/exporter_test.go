package export

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"PaintPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (m *memSink) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.Buffer.Write(p)
}

func (m *memSink) Close() error {
	m.closed = true
	return m.closeErr
}

type outcomes struct {
	mu   sync.Mutex
	errs map[string]error
}

func (o *outcomes) notify(job Job, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.errs == nil {
		o.errs = make(map[string]error)
	}
	o.errs[job.Name] = err
}

func (o *outcomes) get(name string) (error, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	err, ok := o.errs[name]
	return err, ok
}

func sampleSegments() []state.Segment {
	return []state.Segment{
		{Start: state.Point{X: 0, Y: 0}, End: state.Point{X: 100, Y: 100}, Color: state.Black, Width: 5},
		{Start: state.Point{X: 100, Y: 100}, End: state.Point{X: 300, Y: 120}, Color: state.Red, Width: 12},
	}
}

func TestExporter_PNG(t *testing.T) {
	var o outcomes
	e := NewExporter(o.notify)
	sink := &memSink{}
	segs := sampleSegments()

	e.Submit(Job{Name: "a.png", Format: FormatPNG, Segments: segs, Dest: sink})
	e.Wait()

	err, ok := o.get("a.png")
	require.True(t, ok)
	require.NoError(t, err)
	assert.True(t, sink.closed)

	var want bytes.Buffer
	require.NoError(t, EncodePNG(&want, Rasterize(segs, CanvasWidth, CanvasHeight)))
	assert.Equal(t, want.Bytes(), sink.Bytes())
}

func TestExporter_PDF(t *testing.T) {
	var o outcomes
	e := NewExporter(o.notify)
	sink := &memSink{}

	e.Submit(Job{
		Name:     "a.pdf",
		Format:   FormatPDF,
		Segments: sampleSegments(),
		Dest:     sink,
		Info:     PDFInfo{Title: "Painting", Session: "test"},
	})
	e.Wait()

	err, _ := o.get("a.pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(sink.Bytes(), []byte("%PDF-")))
	assert.True(t, sink.closed)
}

func TestWritePDF_PageGeometry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleSegments(), CanvasWidth, CanvasHeight, PDFInfo{Title: "Painting"}))

	out := buf.Bytes()
	assert.True(t, bytes.Contains(out, []byte("/MediaBox [0 0 1080.00 1920.00]")), "page is not 1080x1920 points")
	assert.True(t, bytes.Contains(out, []byte("/Count 1")), "want exactly one page")
	assert.False(t, bytes.Contains(out, []byte("/Count 2")))
}

func TestExporter_SnapshotIsolation(t *testing.T) {
	st := state.NewStore()
	for _, s := range sampleSegments() {
		st.Append(s)
	}
	snap := st.Snapshot()

	var want bytes.Buffer
	require.NoError(t, EncodePNG(&want, Rasterize(snap, CanvasWidth, CanvasHeight)))

	var o outcomes
	e := NewExporter(o.notify)
	sink := &memSink{}
	e.Submit(Job{Name: "iso.png", Format: FormatPNG, Segments: snap, Dest: sink})

	// Keep drawing while the export runs.
	for i := 0; i < 200; i++ {
		f := float32(i)
		st.Append(state.Segment{Start: state.Point{X: f, Y: 500}, End: state.Point{X: f + 1, Y: 600}, Color: state.Blue, Width: 3})
		if i%50 == 0 {
			st.EraseAt(state.Point{X: 0, Y: 0}, 10)
		}
	}
	st.Reset()
	e.Wait()

	err, _ := o.get("iso.png")
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), sink.Bytes())
}

func TestExporter_Failures(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		sink   *memSink
		want   error
	}{
		{"write", FormatPNG, &memSink{writeErr: errors.New("disk full")}, ErrWrite},
		{"permission", FormatPNG, &memSink{writeErr: fmt.Errorf("open: %w", fs.ErrPermission)}, ErrPermissionDenied},
		{"close", FormatPNG, &memSink{closeErr: errors.New("flush failed")}, ErrWrite},
		{"pdf write", FormatPDF, &memSink{writeErr: errors.New("disk full")}, ErrWrite},
		{"pdf permission", FormatPDF, &memSink{writeErr: fmt.Errorf("open: %w", fs.ErrPermission)}, ErrPermissionDenied},
		{"pdf close", FormatPDF, &memSink{closeErr: fmt.Errorf("close: %w", fs.ErrPermission)}, ErrPermissionDenied},
	}

	var o outcomes
	e := NewExporter(o.notify)
	for _, tt := range tests {
		e.Submit(Job{Name: tt.name, Format: tt.format, Segments: sampleSegments(), Dest: tt.sink})
	}
	e.Wait()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, ok := o.get(tt.name)
			require.True(t, ok)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, tt.sink.closed)
		})
	}
}

func TestExporter_NoDestination(t *testing.T) {
	var o outcomes
	e := NewExporter(o.notify)
	e.Submit(Job{Name: "none", Format: FormatPNG})
	e.Wait()

	err, ok := o.get("none")
	require.True(t, ok)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestNotification(t *testing.T) {
	assert.Equal(t, "Saved painting", Notification(nil))
	assert.Equal(t, "Failed to save the image", Notification(fmt.Errorf("%w: x", ErrEncoding)))
	assert.Equal(t, "Permission Denied", Notification(fmt.Errorf("%w: x", ErrPermissionDenied)))
	assert.Equal(t, "Something went wrong", Notification(fmt.Errorf("%w: x", ErrWrite)))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "png", FormatPNG.String())
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}
