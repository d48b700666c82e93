// Package export renders administrator spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"seguros_xpto/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	policySheet    = "Apólices"
	timeCellFormat = "2006-01-02 15:04"
)

// PolicyExportHeader is the first row of the policy export.
var PolicyExportHeader = []string{
	"ID",
	"Simulação",
	"Tipo",
	"Estado",
	"Tomador",
	"NIF",
	"Email",
	"Telefone",
	"Código Postal",
	"Localidade",
	"Periodicidade",
	"Pagamento",
	"Apólice PDF",
	"Criada em",
	"Atualizada em",
}

var policyColumnWidths = []float64{38, 36, 12, 14, 28, 12, 30, 16, 14, 18, 14, 14, 12, 18, 18}

type PolicyXLSXExporter struct{}

var _ interfaces.IPolicyExporter = PolicyXLSXExporter{}

func NewPolicyXLSXExporter() PolicyXLSXExporter { return PolicyXLSXExporter{} }

func (PolicyXLSXExporter) RenderPolicies(rows []interfaces.PolicyExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(policySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(PolicyExportHeader))
	for i, h := range PolicyExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(policySheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(PolicyExportHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(policySheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	for i, w := range policyColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(policySheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := policyRowValues(row)
		if err := f.SetSheetRow(policySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func policyRowValues(row interfaces.PolicyExportRow) []interface{} {
	p := row.Policy
	issued := "não"
	if p.PolicyPDFURL != "" {
		issued = "sim"
	}
	return []interface{}{
		p.ID,
		row.SimulationTitle,
		string(p.Type),
		string(p.Status),
		p.HolderName,
		p.NIF,
		p.Email,
		p.Phone,
		p.AddressPostalCode,
		p.AddressLocality,
		string(p.PaymentFrequency),
		string(p.PaymentMethod),
		issued,
		p.CreatedAt.UTC().Format(timeCellFormat),
		p.UpdatedAt.UTC().Format(timeCellFormat),
	}
}
