package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

const maxWaitDuration = 10 * time.Second

// Suite holds in-memory telemetry so tests can assert on spans and counters.
type Suite struct {
	*testing.T
	Logger *slog.Logger
	Tracer trace.Tracer
	Meter  metric.Meter

	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() {
		// a fresh background context: ctx is already cancelled by now
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Tracer: tp.Tracer("suite"),
		Meter:  mp.Meter("suite"),
		spans:  spans,
		reader: reader,
	}
}

// SpanNames - names of the ended spans, in end order.
func (that *Suite) SpanNames() []string {
	ended := that.spans.Ended()

	names := make([]string, 0, len(ended))
	for _, span := range ended {
		names = append(names, span.Name())
	}

	return names
}

// EndedSpans - spans ended so far.
func (that *Suite) EndedSpans() []sdktrace.ReadOnlySpan {
	return that.spans.Ended()
}

// CounterValue - the current sum of an int64 counter for data points carrying attr.
func (that *Suite) CounterValue(ctx context.Context, name string, attr attribute.KeyValue) int64 {
	that.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(that.T, that.reader.Collect(ctx, &rm))

	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(that.T, ok, "metric %s is not an int64 sum", name)

			for _, point := range sum.DataPoints {
				if value, found := point.Attributes.Value(attr.Key); found && value.Emit() == attr.Value.Emit() {
					total += point.Value
				}
			}
		}
	}

	return total
}
