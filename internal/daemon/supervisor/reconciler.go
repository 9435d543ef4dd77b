package supervisor

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/models"
)

// Reconciler is the only writer of LastState. It mirrors every supervisor
// transition into the store and saves it.
type Reconciler struct {
	mu    sync.Mutex
	store StateStore
	log   logrus.FieldLogger
}

// NewReconciler creates a Reconciler over store.
func NewReconciler(store StateStore, log logrus.FieldLogger) *Reconciler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reconciler{store: store, log: log}
}

// Record applies fn to LastState and saves. Save errors are logged.
func (r *Reconciler) Record(fn func(*models.LastState)) models.LastState {
	r.mu.Lock()
	defer r.mu.Unlock()

	ls := r.store.UpdateLastState(fn)
	if err := r.store.Save(); err != nil {
		r.log.WithError(err).Warn("failed to persist last state")
	}
	r.log.WithFields(logrus.Fields{
		"was_running":          ls.WasRunning,
		"system_proxy_enabled": ls.SystemProxyEnabled,
	}).Debug("last state recorded")
	return ls
}

// Current returns the persisted LastState.
func (r *Reconciler) Current() models.LastState {
	return r.store.GetLastState()
}
