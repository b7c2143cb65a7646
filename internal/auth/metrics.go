package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultExpired = "expired"
)

var verificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "indexadmin",
		Subsystem: "auth",
		Name:      "token_verifications_total",
		Help:      "Token verifications by outcome.",
	},
	[]string{"result"},
)
