package progress

import (
	"io"
	"sync"
)

// Reporter receives progress events from long-running file operations
type Reporter interface {
	// SetTotal sets the number of entries the operation will process
	SetTotal(totalFiles int, totalBytes int64)
	// Start begins tracking work on one file
	Start(path string, totalBytes int64)
	// Update reports bytes processed on the current file
	Update(bytesDone int64)
	// Complete marks the current file as done
	Complete()
	// Error reports a per-file failure
	Error(err error)
}

// Callback is a function that receives progress updates
type Callback func(update Update)

// UpdateType indicates the type of progress update
type UpdateType int

const (
	UpdateStart UpdateType = iota
	UpdateProgress
	UpdateComplete
	UpdateError
)

// Update represents a progress update
type Update struct {
	Type           UpdateType
	CurrentFile    string
	CurrentBytes   int64
	CurrentTotal   int64
	FilesCompleted int
	FilesTotal     int
	BytesCompleted int64
	BytesTotal     int64
	Error          error
}

// CallbackReporter implements Reporter with a callback function
type CallbackReporter struct {
	callback       Callback
	mu             sync.Mutex
	currentFile    string
	currentTotal   int64
	filesTotal     int
	bytesTotal     int64
	filesCompleted int
	bytesCompleted int64
}

// NewCallbackReporter creates a new CallbackReporter
func NewCallbackReporter(callback Callback) *CallbackReporter {
	return &CallbackReporter{callback: callback}
}

// SetTotal sets the total number of files and bytes to process
func (r *CallbackReporter) SetTotal(totalFiles int, totalBytes int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filesTotal = totalFiles
	r.bytesTotal = totalBytes
}

// Start begins tracking work on one file
func (r *CallbackReporter) Start(path string, totalBytes int64) {
	r.mu.Lock()
	r.currentFile = path
	r.currentTotal = totalBytes
	update := r.snapshot(UpdateStart, 0, nil)
	callback := r.callback
	r.mu.Unlock()

	// Callback runs outside the lock to prevent deadlock
	if callback != nil {
		callback(update)
	}
}

// Update reports bytes processed on the current file
func (r *CallbackReporter) Update(bytesDone int64) {
	r.mu.Lock()
	update := r.snapshot(UpdateProgress, bytesDone, nil)
	callback := r.callback
	r.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}

// Complete marks the current file as done
func (r *CallbackReporter) Complete() {
	r.mu.Lock()
	r.filesCompleted++
	r.bytesCompleted += r.currentTotal
	update := r.snapshot(UpdateComplete, r.currentTotal, nil)
	callback := r.callback
	r.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}

// Error reports a per-file failure
func (r *CallbackReporter) Error(err error) {
	r.mu.Lock()
	update := r.snapshot(UpdateError, 0, err)
	callback := r.callback
	r.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}

// snapshot builds an Update while holding the lock
func (r *CallbackReporter) snapshot(typ UpdateType, bytes int64, err error) Update {
	return Update{
		Type:           typ,
		CurrentFile:    r.currentFile,
		CurrentBytes:   bytes,
		CurrentTotal:   r.currentTotal,
		FilesCompleted: r.filesCompleted,
		FilesTotal:     r.filesTotal,
		BytesCompleted: r.bytesCompleted,
		BytesTotal:     r.bytesTotal,
		Error:          err,
	}
}

// Writer wraps an io.Writer to report write progress
type Writer struct {
	writer   io.Writer
	reporter Reporter
	done     int64
}

// NewWriter creates a progress-tracking writer
func NewWriter(w io.Writer, reporter Reporter) *Writer {
	return &Writer{writer: w, reporter: reporter}
}

// Write implements io.Writer
func (pw *Writer) Write(p []byte) (n int, err error) {
	n, err = pw.writer.Write(p)
	if n > 0 {
		pw.done += int64(n)
		if pw.reporter != nil {
			pw.reporter.Update(pw.done)
		}
	}
	return n, err
}

// NullReporter is a no-op reporter
type NullReporter struct{}

func (NullReporter) SetTotal(totalFiles int, totalBytes int64) {}
func (NullReporter) Start(path string, totalBytes int64)       {}
func (NullReporter) Update(bytesDone int64)                    {}
func (NullReporter) Complete()                                 {}
func (NullReporter) Error(err error)                           {}
