package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.SimulationSubmitted("auto", "accepted")
	r.SimulationSubmitted("auto", "accepted")
	r.PolicyTransition("", "em_criacao")
	r.PolicyTransition("em_validacao", "em_vigor")
	r.DuplicateSuppressed("upload")
	r.ListDegraded("policy")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.simulationsSubmitted.WithLabelValues("auto", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.policyTransitions.WithLabelValues("none", "em_criacao")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.policyTransitions.WithLabelValues("em_validacao", "em_vigor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.duplicatesSuppressed.WithLabelValues("upload")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.listsDegraded.WithLabelValues("policy")))

	n, err := testutil.GatherAndCount(reg, "seguros_simulations_submitted_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
