package services

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/0xDegenDeveloper/ui-clone/metrics"
)

var (
	ErrCallLimitExceeded = errors.New("call rate limit exceeded")
	ErrUnknownVisitor    = errors.New("could not identify visitor")
)

// CallRateLimiter limits page calls per client ip. Each vault card costs one call.
type CallRateLimiter struct {
	proxyCount uint
	rateLimit  uint
	burstLimit uint

	mutex    sync.Mutex
	visitors map[string]*callRateVisitor
}

type callRateVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var GlobalCallRateLimiter *CallRateLimiter

var (
	rateLimiterVisitors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vault_explorer_rate_limiter_visitors",
		Help: "Number of visitors tracked by the call rate limiter",
	})
	rateLimiterRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vault_explorer_rate_limiter_rejected",
		Help: "Number of page calls rejected by the call rate limiter",
	})
)

// StartCallRateLimiter is used to start the global call rate limiter
func StartCallRateLimiter(proxyCount uint, rateLimit uint, burstLimit uint) error {
	if GlobalCallRateLimiter != nil {
		return nil
	}

	GlobalCallRateLimiter = NewCallRateLimiter(proxyCount, rateLimit, burstLimit)
	go GlobalCallRateLimiter.cleanupVisitors()

	metrics.AddPreCollectFn(func() {
		GlobalCallRateLimiter.mutex.Lock()
		defer GlobalCallRateLimiter.mutex.Unlock()

		rateLimiterVisitors.Set(float64(len(GlobalCallRateLimiter.visitors)))
	})

	return nil
}

func NewCallRateLimiter(proxyCount uint, rateLimit uint, burstLimit uint) *CallRateLimiter {
	return &CallRateLimiter{
		proxyCount: proxyCount,
		rateLimit:  rateLimit,
		burstLimit: burstLimit,
		visitors:   map[string]*callRateVisitor{},
	}
}

// CheckCallLimit consumes callCost tokens of the requesting visitor. A nil limiter allows everything.
func (crl *CallRateLimiter) CheckCallLimit(r *http.Request, callCost uint) error {
	if crl == nil {
		return nil
	}
	visitor := crl.getVisitor(r)
	if visitor == nil {
		return ErrUnknownVisitor
	}
	if !visitor.limiter.AllowN(time.Now(), int(callCost)) {
		rateLimiterRejected.Inc()
		return ErrCallLimitExceeded
	}
	return nil
}

func (crl *CallRateLimiter) getVisitor(r *http.Request) *callRateVisitor {
	var ip string

	if crl.proxyCount > 0 {
		forwardIps := strings.Split(r.Header.Get("X-Forwarded-For"), ", ")
		forwardIdx := len(forwardIps) - int(crl.proxyCount)
		if forwardIdx >= 0 {
			ip = forwardIps[forwardIdx]
		}
	}
	if ip == "" {
		var err error
		ip, _, err = net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return nil
		}
	}

	crl.mutex.Lock()
	defer crl.mutex.Unlock()

	visitor := crl.visitors[ip]
	if visitor == nil {
		visitor = &callRateVisitor{
			limiter: rate.NewLimiter(rate.Limit(crl.rateLimit), int(crl.burstLimit)),
		}
		crl.visitors[ip] = visitor
	}
	visitor.lastSeen = time.Now()
	return visitor
}

func (crl *CallRateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		crl.mutex.Lock()
		for ip, v := range crl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(crl.visitors, ip)
			}
		}
		crl.mutex.Unlock()
	}
}
