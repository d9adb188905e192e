package telemetry

import (
	"go.uber.org/zap"
)

const (
	FieldEvent     = "event"
	FieldTool      = "tool"
	FieldUseCase   = "useCase"
	FieldOp        = "op"
	FieldSessionID = "session_id"
	FieldLogSource = "log_source"
)

const (
	EventCatalogInit      = "catalog_init"
	EventMutationApplied  = "mutation_applied"
	EventMutationRejected = "mutation_rejected"
	EventSessionStart     = "session_start"
	EventSessionEnd       = "session_end"
	EventExportWritten    = "export_written"
	EventSeedLoaded       = "seed_loaded"
)

const (
	LogSourceCore = "core"
	LogSourceCLI  = "cli"
)

func EventField(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

func ToolField(name string) zap.Field {
	return zap.String(FieldTool, name)
}

func UseCaseField(name string) zap.Field {
	return zap.String(FieldUseCase, name)
}

func OpField(op string) zap.Field {
	return zap.String(FieldOp, op)
}

func SessionIDField(id string) zap.Field {
	return zap.String(FieldSessionID, id)
}
