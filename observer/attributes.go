package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for reconciliation spans and metrics.
var (
	AttrRequestID = attribute.Key("request.id")
	AttrStatus    = attribute.Key("request.status")

	AttrDocument = attribute.Key("extract.document")
	AttrTables   = attribute.Key("extract.tables")
	AttrRows     = attribute.Key("extract.rows")

	AttrSectionCount = attribute.Key("reconcile.section_count")
)
