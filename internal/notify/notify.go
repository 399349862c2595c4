// Package notify carries fire-and-forget user notices. There is no
// acknowledgement protocol; sinks are free to drop messages.
package notify

import (
	"sync"

	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
)

// Notifier surfaces a human-readable message to whoever is watching.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
	Warning(msg string)
}

// LogNotifier writes notices to the application log.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { logger.Infof("notice: %s", msg) }
func (LogNotifier) Error(msg string)   { logger.Errorf("notice: %s", msg) }
func (LogNotifier) Info(msg string)    { logger.Infof("notice: %s", msg) }
func (LogNotifier) Warning(msg string) { logger.Warnf("notice: %s", msg) }

// Recorder collects notices in memory. Test helper; safe for use from the
// expiry watcher goroutine.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	infos     []string
	warnings  []string
}

func (r *Recorder) Success(msg string) { r.mu.Lock(); r.successes = append(r.successes, msg); r.mu.Unlock() }
func (r *Recorder) Error(msg string)   { r.mu.Lock(); r.errors = append(r.errors, msg); r.mu.Unlock() }
func (r *Recorder) Info(msg string)    { r.mu.Lock(); r.infos = append(r.infos, msg); r.mu.Unlock() }
func (r *Recorder) Warning(msg string) { r.mu.Lock(); r.warnings = append(r.warnings, msg); r.mu.Unlock() }

func (r *Recorder) Successes() []string { r.mu.Lock(); defer r.mu.Unlock(); return append([]string(nil), r.successes...) }
func (r *Recorder) Errors() []string    { r.mu.Lock(); defer r.mu.Unlock(); return append([]string(nil), r.errors...) }
func (r *Recorder) Infos() []string     { r.mu.Lock(); defer r.mu.Unlock(); return append([]string(nil), r.infos...) }
func (r *Recorder) Warnings() []string  { r.mu.Lock(); defer r.mu.Unlock(); return append([]string(nil), r.warnings...) }
