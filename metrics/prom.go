package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PromRecorder records creations in a Prometheus counter.
type PromRecorder struct {
	created *prometheus.CounterVec
}

// NewPromRecorder registers the creation counter on reg. If reg is nil, the
// default registerer is used. An already registered counter is reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creational_objects_created_total",
		Help: "Total number of objects created per pattern and variant",
	}, []string{"pattern", "variant"})

	if err := reg.Register(created); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			created = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromRecorder{created: created}, nil
}

func (r *PromRecorder) RecordCreation(pattern, variant string) {
	r.created.WithLabelValues(pattern, variant).Inc()
}

// WriteText dumps every metric family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
