package spreadsheet

import (
	"sort"

	"FinanceTracker/internal/entity"

	"github.com/xuri/excelize/v2"
)

const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var transactionHeader = []interface{}{"Date", "Type", "Category", "Amount", "Payment Method", "Description"}

type ISpreadsheet interface {
	LedgerWorkbook(transactions []entity.Transaction, summary entity.FinancialSummary) ([]byte, error)
}

type spreadsheet struct{}

func New() ISpreadsheet {
	return &spreadsheet{}
}

// LedgerWorkbook renders every transaction on one sheet and the summary
// totals with the per-category expense split on a second one.
func (s *spreadsheet) LedgerWorkbook(transactions []entity.Transaction, summary entity.FinancialSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(transactions)+1)
	rows = append(rows, transactionHeader)
	for _, t := range transactions {
		rows = append(rows, []interface{}{t.Date, string(t.Type), t.Category, t.Amount, t.PaymentMethod, t.Description})
	}
	if err := writeRows(f, TransactionsSheet, rows); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(TransactionsSheet, 1, 1, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(TransactionsSheet, "A", "F", 16); err != nil {
		return nil, err
	}

	summaryRows := [][]interface{}{
		{"Total Income", summary.TotalIncome},
		{"Total Expense", summary.TotalExpense},
		{"Net Balance", summary.NetBalance},
		{},
		{"Expense Category", "Amount"},
	}
	categoryHeaderRow := len(summaryRows)
	for _, category := range sortedKeys(summary.ExpenseByCategory) {
		summaryRows = append(summaryRows, []interface{}{category, summary.ExpenseByCategory[category]})
	}
	if err := writeRows(f, SummarySheet, summaryRows); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(SummarySheet, categoryHeaderRow, categoryHeaderRow, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 20); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
