package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetGauge().GetValue()
}

func TestNewStoreMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(registry)

	if metrics.checkoutCompleted == nil {
		t.Error("checkoutCompleted counter should not be nil")
	}
	if metrics.checkoutFailed == nil {
		t.Error("checkoutFailed counter should not be nil")
	}
	if metrics.ordersCanceled == nil {
		t.Error("ordersCanceled counter should not be nil")
	}
	if metrics.stockRejections == nil {
		t.Error("stockRejections counter should not be nil")
	}
	if metrics.checkoutDuration == nil {
		t.Error("checkoutDuration histogram should not be nil")
	}
	if metrics.openCarts == nil {
		t.Error("openCarts gauge should not be nil")
	}
}

func TestRecordCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(registry)

	metrics.RecordCheckoutCompleted()
	metrics.RecordCheckoutCompleted()
	metrics.RecordCheckoutFailed()
	metrics.RecordOrderCanceled()
	metrics.RecordStockRejection()

	if got := counterValue(t, metrics.checkoutCompleted); got != 2 {
		t.Fatalf("expected 2 completed checkouts, got %v", got)
	}
	if got := counterValue(t, metrics.checkoutFailed); got != 1 {
		t.Fatalf("expected 1 failed checkout, got %v", got)
	}
	if got := counterValue(t, metrics.ordersCanceled); got != 1 {
		t.Fatalf("expected 1 canceled order, got %v", got)
	}
	if got := counterValue(t, metrics.stockRejections); got != 1 {
		t.Fatalf("expected 1 stock rejection, got %v", got)
	}
}

func TestRecordCartOpened(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(registry)

	metrics.RecordCartOpened()
	metrics.RecordCartOpened()

	if got := gaugeValue(t, metrics.openCarts); got != 2 {
		t.Fatalf("expected 2 open carts, got %v", got)
	}
}

func TestRecordCheckoutDuration(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(registry)

	metrics.RecordCheckoutDuration(42 * time.Millisecond)

	metric := &dto.Metric{}
	if err := metrics.checkoutDuration.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if metric.GetHistogram().GetSampleCount() != 1 {
		t.Fatalf("expected 1 observation, got %d", metric.GetHistogram().GetSampleCount())
	}
}

func TestDuplicateRegistrationReturnsExisting(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newStoreMetricsWithRegisterer(registry)
	second := newStoreMetricsWithRegisterer(registry)

	first.RecordCheckoutCompleted()
	second.RecordCheckoutCompleted()

	if got := counterValue(t, first.checkoutCompleted); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}
