// Package metrics содержит счётчики Prometheus для основных операций сервиса.
// Метрики регистрируются в реестре по умолчанию и отдаются через /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal считает попытки регистрации по результату.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_registrations_total",
		Help: "Total number of registration attempts by result.",
	}, []string{"result"})

	// LoginsTotal считает попытки входа по результату.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Total number of login attempts by result.",
	}, []string{"result"})

	// TokenValidationsTotal считает проверки токена в middleware по результату.
	TokenValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_token_validations_total",
		Help: "Total number of bearer token validations by result.",
	}, []string{"result"})
)

// Значения метки result.
const (
	ResultOK    = "ok"
	ResultError = "error"
)
