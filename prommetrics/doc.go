// Package prommetrics provides a kmeansgo.MetricsCollector that exports
// engine and multi-start metrics through prometheus/client_golang.
//
//	reg := prometheus.NewRegistry()
//	c, err := prommetrics.New(prommetrics.WithRegisterer(reg))
//	if err != nil {
//		return err
//	}
//	eng := kmeansgo.NewParallel(kmeansgo.WithMetricsCollector(c))
package prommetrics
