// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	FieldSite    = "site"
	FieldGroupID = "groupid"
)

type SyncLogWriter interface {
	AddSyncLog(groupID int64, level string, message string) error
}

// SyncLogHook copies group related entries into the sync log table of the
// site they belong to.
type SyncLogHook struct {
	mu      sync.RWMutex
	writers map[string]SyncLogWriter
	failed  func(err error)
}

func NewSyncLogHook(failed func(err error)) *SyncLogHook {
	return &SyncLogHook{
		writers: map[string]SyncLogWriter{},
		failed:  failed,
	}
}

func (h *SyncLogHook) Register(site string, w SyncLogWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writers[site] = w
}

func (h *SyncLogHook) Unregister(site string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.writers, site)
}

func (h *SyncLogHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *SyncLogHook) Fire(entry *logrus.Entry) error {
	site, ok := entry.Data[FieldSite].(string)
	if !ok {
		return nil
	}
	groupID, ok := entry.Data[FieldGroupID].(int64)
	if !ok {
		return nil
	}

	h.mu.RLock()
	w, ok := h.writers[site]
	h.mu.RUnlock()
	if !ok {
		return nil
	}

	message := entry.Message
	if err, ok := entry.Data[logrus.ErrorKey]; ok {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	err := w.AddSyncLog(groupID, entry.Level.String(), message)
	if err != nil && h.failed != nil {
		h.failed(err)
	}

	// logrus prints hook errors to stderr on every entry, failures go to the callback
	return nil
}
