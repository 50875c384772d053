package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PredictionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tippliga_predictions_accepted_total",
		Help: "Number of newly charged predictions.",
	})
	CreditsCharged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tippliga_credits_charged_total",
		Help: "Credits charged for prediction batches.",
	})
	SettlementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tippliga_settlements_total",
		Help: "Number of settlement runs.",
	})
	PoolCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tippliga_pool_credited_total",
		Help: "Credits distributed to winners.",
	})
	PoolCarried = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tippliga_pool_carried_total",
		Help: "Unclaimed pool credits rolled forward.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
