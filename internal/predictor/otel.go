package predictor

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/navsight/gunnery/internal/predictor"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
