package passwords

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"
	actionRevoke  = "revoke"

	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultError    = "error"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "indexadmin",
		Subsystem: "passwords",
		Name:      "transitions_total",
		Help:      "Password lifecycle transitions by action and result.",
	},
	[]string{"action", "result"},
)
