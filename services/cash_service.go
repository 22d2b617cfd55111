package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/printer"
	"github.com/ruaburger/pos-app/utils"
)

// CashService owns the register session lifecycle. Opening and closing both
// run inside a single transaction so that two concurrent requests can never
// end up with two open sessions or a half-closed one.
type CashService struct {
	DB      *gorm.DB
	Printer printer.Printer
}

func NewCashService(db *gorm.DB, prt printer.Printer) *CashService {
	return &CashService{DB: db, Printer: prt}
}

// CashReport is the read-only reconciliation view of the open session.
type CashReport struct {
	TotalSales       float64          `json:"total_sales"`
	Expected         float64          `json:"expected"`
	OpeningAmount    float64          `json:"opening_amount"`
	PaymentBreakdown PaymentBreakdown `json:"payment_breakdown"`
}

// OpenSession opens the register with an opening float. Fails when another
// session is already open; the check and the insert share one transaction.
func (s *CashService) OpenSession(openingAmount float64) (*models.CashSession, error) {
	if openingAmount < 0 {
		return nil, utils.NewValidationError("opening amount must not be negative")
	}

	var session models.CashSession
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CashSession
		err := tx.Where("is_open = ?", true).First(&existing).Error
		if err == nil {
			return utils.NewConflictError("cash session already open")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		session = models.CashSession{
			OpenedAt:      time.Now(),
			OpeningAmount: openingAmount,
			IsOpen:        true,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("cash session #%d opened with %s", session.ID, utils.FormatCurrencyBRL(openingAmount))
	return &session, nil
}

// OpenSessionInfo returns the single open session, or nil when the register
// is closed.
func (s *CashService) OpenSessionInfo() (*models.CashSession, error) {
	var session models.CashSession
	err := s.DB.Where("is_open = ?", true).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Report computes the reconciliation figures for the open session without
// touching it.
func (s *CashService) Report() (*models.CashSession, *CashReport, error) {
	session, err := s.OpenSessionInfo()
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, utils.NewConflictError("no cash session open")
	}

	breakdown, totalSales, err := SummarizeSession(s.DB, session.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, &CashReport{
		TotalSales:       totalSales,
		Expected:         session.OpeningAmount + totalSales,
		OpeningAmount:    session.OpeningAmount,
		PaymentBreakdown: breakdown,
	}, nil
}

// CloseSession finalizes the open session: it locks in total sales, the
// expected drawer amount and the counted difference, then flips the session
// closed. The closing receipt is printed after the commit; a printer failure
// is logged and never undoes the close.
func (s *CashService) CloseSession(closingAmount float64) (*models.CashSession, *PaymentBreakdown, error) {
	var session models.CashSession
	var breakdown PaymentBreakdown

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("is_open = ?", true).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewConflictError("no cash session open")
		}
		if err != nil {
			return err
		}

		var totalSales float64
		breakdown, totalSales, err = SummarizeSession(tx, session.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		session.TotalSales = totalSales
		session.ExpectedAmount = session.OpeningAmount + totalSales
		session.Difference = closingAmount - session.ExpectedAmount
		session.ClosingAmount = &closingAmount
		session.ClosedAt = &now
		session.IsOpen = false
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, nil, err
	}

	utils.InfoLogger.Printf("cash session #%d closed, difference %s",
		session.ID, utils.FormatCurrencyBRL(session.Difference))

	// Side effect only: the close already committed.
	report := printer.RenderReport("FECHAMENTO DE CAIXA", closingReportLines(&session, breakdown))
	if err := s.Printer.Print(report); err != nil {
		utils.ErrorLogger.Errorf("closing report for session #%d not printed: %v", session.ID, err)
	}

	return &session, &breakdown, nil
}

func closingReportLines(session *models.CashSession, breakdown PaymentBreakdown) []string {
	tag := "[OK]"
	if session.Difference > 0 {
		tag = "[SOBRA]"
	} else if session.Difference < 0 {
		tag = "[FALTA]"
	}

	closedAt := time.Now()
	if session.ClosedAt != nil {
		closedAt = *session.ClosedAt
	}
	closingAmount := 0.0
	if session.ClosingAmount != nil {
		closingAmount = *session.ClosingAmount
	}

	return []string{
		"================================",
		"     FECHAMENTO DE CAIXA        ",
		"================================",
		fmt.Sprintf("ID do Caixa: %d", session.ID),
		fmt.Sprintf("Abertura:    %s", session.OpenedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Fechamento:  %s", closedAt.Format("2006-01-02 15:04:05")),
		"",
		"----- VENDAS POR PAGAMENTO -----",
		fmt.Sprintf("Dinheiro:    %s", utils.FormatCurrencyBRL(breakdown.Cash)),
		fmt.Sprintf("PIX:         %s", utils.FormatCurrencyBRL(breakdown.Pix)),
		fmt.Sprintf("Cartão:      %s", utils.FormatCurrencyBRL(breakdown.Card)),
		"",
		"----- RESUMO DO CAIXA -----",
		fmt.Sprintf("Valor inicial:   %s", utils.FormatCurrencyBRL(session.OpeningAmount)),
		fmt.Sprintf("Total em vendas: %s", utils.FormatCurrencyBRL(session.TotalSales)),
		fmt.Sprintf("Esperado:        %s", utils.FormatCurrencyBRL(session.ExpectedAmount)),
		fmt.Sprintf("Em caixa:        %s", utils.FormatCurrencyBRL(closingAmount)),
		fmt.Sprintf("Diferença:       %s %s", utils.FormatCurrencyBRL(session.Difference), tag),
		"",
		"Assinatura: ____________________",
		"",
		"THE RUA BURGUER - SISTEMA PDV",
		"================================",
	}
}
