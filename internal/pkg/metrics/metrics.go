package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

var (
	// Registry holds the application collectors; it is exposed on /metrics.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"method", "route"})

	ordersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Orders created in pending state.",
	})

	orderTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Order status changes by target status.",
	}, []string{"status"})

	couponRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coupons",
		Name:      "rejections_total",
		Help:      "Coupon validation failures by message code.",
	}, []string{"code"})

	rewardSpins = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rewards",
		Name:      "spins_total",
		Help:      "Wheel spins by outcome.",
	}, []string{"prize"})

	notificationsDispatched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "dispatched_total",
		Help:      "Outbox jobs handed to the broker by result.",
	}, []string{"topic", "result"})

	refundsDue = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payments",
		Name:      "refunds_due_total",
		Help:      "Captured payments that cannot settle their order and need a refund.",
	}, []string{"reason"})

	panicsRecovered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "panics_recovered_total",
		Help:      "Handler panics caught by the recovery middleware.",
	}, []string{"route"})

	jobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "runs_total",
		Help:      "Scheduled job runs.",
	}, []string{"job", "success"})

	jobDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "run_duration_seconds",
		Help:      "Duration of scheduled job runs.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"job"})
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ordersPlaced,
		orderTransitions,
		couponRejections,
		rewardSpins,
		notificationsDispatched,
		refundsDue,
		panicsRecovered,
		jobRuns,
		jobDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() { httpInFlight.Inc() }

func RequestFinished(method, route, status string, d time.Duration) {
	httpInFlight.Dec()
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func PanicRecovered(route string) {
	if route == "" {
		route = "unmatched"
	}
	panicsRecovered.WithLabelValues(route).Inc()
}

func OrderPlaced() { ordersPlaced.Inc() }

// RefundDue counts a captured payment that no order will keep.
func RefundDue(reason string) { refundsDue.WithLabelValues(reason).Inc() }

func OrderTransitioned(status string) { orderTransitions.WithLabelValues(status).Inc() }

func CouponRejected(code string) {
	if code == "" {
		code = "unknown"
	}
	couponRejections.WithLabelValues(code).Inc()
}

func RewardSpun(prize bool) {
	label := "false"
	if prize {
		label = "true"
	}
	rewardSpins.WithLabelValues(label).Inc()
}

func NotificationDispatched(topic string, ok bool) {
	result := "published"
	if !ok {
		result = "failed"
	}
	notificationsDispatched.WithLabelValues(topic, result).Inc()
}

func JobRun(job string, d time.Duration, success bool) {
	result := "false"
	if success {
		result = "true"
	}
	jobRuns.WithLabelValues(job, result).Inc()
	jobDuration.WithLabelValues(job).Observe(d.Seconds())
}
