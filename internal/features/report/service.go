package report

import (
	"context"

	"ecosnap/internal/features/payment"
	"ecosnap/internal/features/user"

	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	ExportPayments(ctx context.Context) ([]byte, string, error)
}

type ReportServiceImpl struct {
	PaymentRepo payment.PaymentRepository
	UserRepo    user.UserRepository
}

func NewReportService(paymentRepo payment.PaymentRepository, userRepo user.UserRepository) ReportService {
	return &ReportServiceImpl{
		PaymentRepo: paymentRepo,
		UserRepo:    userRepo,
	}
}

// ExportPayments renders every payment into an XLSX workbook, resolving
// user names so the sheet is readable without a second lookup.
func (s *ReportServiceImpl) ExportPayments(ctx context.Context) ([]byte, string, error) {
	payments, err := s.PaymentRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Payments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	columns := []string{"Transaction ID", "User", "Month", "Year", "Amount", "Method", "Status", "Paid At"}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	names := map[string]string{}
	for rowIdx, p := range payments {
		userName, ok := names[p.UserID.Hex()]
		if !ok {
			userName = p.UserID.Hex()
			if u, err := s.UserRepo.FindByID(ctx, p.UserID); err == nil {
				userName = u.Name
			}
			names[p.UserID.Hex()] = userName
		}

		values := []any{
			p.TransactionID,
			userName,
			p.Month,
			p.Year,
			p.Amount,
			string(p.Method),
			string(p.Status),
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buffer.Bytes(), "payments.xlsx", nil
}
