package middleware

import (
	"runtime"
	"strconv"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/metrics"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

const systemMetricsInterval = 15 * time.Second

// MetricsMiddleware collects HTTP request metrics. Scrape and health
// endpoints are excluded so Prometheus polling does not dominate the series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == "/api/v1/metrics" || path == "/api/v1/ping" {
			c.Next()
			return
		}
		method := c.Request.Method

		metrics.RequestInProgress.WithLabelValues(method, path).Inc()
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(duration)
		metrics.RequestInProgress.WithLabelValues(method, path).Dec()
	}
}

// UpdateSystemMetrics starts the background runtime and host gauge collector
func UpdateSystemMetrics() {
	go func() {
		ticker := time.NewTicker(systemMetricsInterval)
		defer ticker.Stop()

		for {
			collectSystemMetrics()
			<-ticker.C
		}
	}()
}

func collectSystemMetrics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	metrics.MemoryStats.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	metrics.MemoryStats.WithLabelValues("sys").Set(float64(memStats.Sys))
	metrics.MemoryStats.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	metrics.MemoryStats.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))

	metrics.GoroutineCount.Set(float64(runtime.NumGoroutine()))

	if percents, err := cpu.Percent(0, true); err == nil {
		for core, percent := range percents {
			metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(core)).Set(percent)
		}
	}
	if avg, err := load.Avg(); err == nil {
		metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
		metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
		metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
	}
}
