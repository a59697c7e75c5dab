package events

import "github.com/atomicstack/mountpanel/internal/logging"

type MountsTracer struct{}

var Mounts = MountsTracer{}

func (MountsTracer) Loaded(count int) {
	logging.Trace("mounts.load", map[string]interface{}{"count": count})
}

func (MountsTracer) LoadFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("mounts.load.error", map[string]interface{}{"error": err.Error()})
}

func (MountsTracer) Candidates(total, kept int, disksOnly bool) {
	logging.Trace("mounts.candidates", map[string]interface{}{
		"total":     total,
		"kept":      kept,
		"disksOnly": disksOnly,
	})
}
