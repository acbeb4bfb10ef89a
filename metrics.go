package skipgram

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes training progress as prometheus collectors. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	EpochLoss  prometheus.Gauge
	EpochScore prometheus.Gauge
	Epochs     prometheus.Counter
	Windows    prometheus.Counter
	EarlyStops prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		EpochLoss: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "skipgram_epoch_loss",
			Help: "average window loss of the last finished epoch",
		}),
		EpochScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "skipgram_epoch_f1",
			Help: "average macro F1 of the last finished epoch",
		}),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skipgram_epochs_total",
			Help: "finished training epochs",
		}),
		Windows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skipgram_windows_total",
			Help: "target windows processed by forward/backward",
		}),
		EarlyStops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skipgram_early_stops_total",
			Help: "training calls ended by the early stopping rule",
		}),
	}
	for _, c := range []prometheus.Collector{m.EpochLoss, m.EpochScore, m.Epochs, m.Windows, m.EarlyStops} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register metrics")
		}
	}
	return m, nil
}

func (m *Metrics) window() {
	if m == nil {
		return
	}
	m.Windows.Inc()
}

func (m *Metrics) epoch(s EpochStats) {
	if m == nil {
		return
	}
	m.Epochs.Inc()
	m.EpochLoss.Set(s.Loss)
	m.EpochScore.Set(s.Score)
	if s.Stopped {
		m.EarlyStops.Inc()
	}
}
