package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this engine's spans in whatever trace backend the
// host process wires up, the same role "langgraph-go" plays in emit.OTelEmitter.
const tracerName = "cargoflow"

// Tracer returns the engine's tracer, created fresh from whatever global
// TracerProvider is registered at call time (a no-op provider if the host
// process never configured one, matching the teacher repo's "works
// without an explicit otel.SetTracerProvider call" default).
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartJob opens the span covering one job's whole handler pipeline,
// tagged with the cargo and component id it is running for.
func StartJob(ctx context.Context, cargoLabel string, componentID int) (context.Context, trace.Span) {
	ctx, span := Tracer().Start(ctx, "job")
	span.SetAttributes(
		attribute.String("cargoflow.cargo", cargoLabel),
		attribute.Int("cargoflow.component_id", componentID),
	)
	return ctx, span
}

// StartHandler opens a child span for one handler's run within a job span
// already started by StartJob.
func StartHandler(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name)
}

// EndWithError ends span, recording err as the span's status if non-nil.
func EndWithError(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
