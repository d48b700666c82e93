package interfaces

import "seguros_xpto/internal/domain/entities"

// PolicyExportRow is one line of the administrator policy export.
type PolicyExportRow struct {
	Policy          entities.Policy
	SimulationTitle string
}

// IPolicyExporter renders policy rows into a downloadable spreadsheet.
type IPolicyExporter interface {
	RenderPolicies(rows []PolicyExportRow) ([]byte, error)
}
