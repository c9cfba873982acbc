package metrics

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	preCollectMutex sync.Mutex
	preCollectFns   []func()
)

// AddPreCollectFn registers a callback that refreshes gauges right before a scrape.
func AddPreCollectFn(fn func()) {
	preCollectMutex.Lock()
	defer preCollectMutex.Unlock()
	preCollectFns = append(preCollectFns, fn)
}

func runPreCollectFns() {
	preCollectMutex.Lock()
	fns := make([]func(), len(preCollectFns))
	copy(fns, preCollectFns)
	preCollectMutex.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func StartMetricsServer(logger logrus.FieldLogger, host string, port string) error {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", GetMetricsHandler())

	srv := &http.Server{
		Addr:              host + ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	go func() {
		logger.Infof("metrics server listening on %v", srv.Addr)
		if err := srv.Serve(listener); err != nil {
			logger.WithError(err).Fatal("Error serving metrics")
		}
	}()

	return nil
}

type metricsHandler struct {
	handler     http.Handler
	mutex       sync.Mutex
	lastCollect time.Time
}

// GetMetricsHandler returns the prometheus handler, pre-collect callbacks run at most once per second.
func GetMetricsHandler() http.Handler {
	return &metricsHandler{
		handler: promhttp.Handler(),
	}
}

func (mh *metricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mh.mutex.Lock()
	if time.Since(mh.lastCollect) > time.Second {
		mh.lastCollect = time.Now()
		mh.mutex.Unlock()
		runPreCollectFns()
	} else {
		mh.mutex.Unlock()
	}

	mh.handler.ServeHTTP(w, r)
}
