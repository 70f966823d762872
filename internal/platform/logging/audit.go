package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// LogAuditEvent logs a structured audit event.
//
// Args:
//   - action: The action performed (e.g., "save", "read")
//   - resourceType: The type of resource (e.g., "profile")
//   - resourceID: The ID of the resource
//   - result: AuditSuccess or AuditFailure
//   - details: Optional additional details
func LogAuditEvent(
	ctx context.Context,
	action, resourceType, resourceID, result string,
	details map[string]any,
) {
	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("audit.details", details))
	}
	LoggerFromContext(ctx).Info("Audit event", fields...)
}
