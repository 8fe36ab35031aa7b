package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recoverableRatio is the share of an issued loan that must be repaid; the
// remainder is permanently waived.
var recoverableRatio = decimal.NewFromFloat(0.7)

// Split is the fixed 70/30 decomposition of a loan amount.
type Split struct {
	Recoverable decimal.Decimal
	Waiver      decimal.Decimal
	Monthly     decimal.Decimal
}

// ComputeSplit derives the recoverable/waiver portions and the flat monthly
// installment amount for a requested total and term.
//
// Recoverable is rounded to cents and the waiver is its exact complement, so
// the two always sum to the total.
func ComputeSplit(total decimal.Decimal, term int) (Split, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return Split{}, ErrInvalidAmount
	}
	if term <= 0 {
		return Split{}, ErrInvalidTerm
	}
	recoverable := total.Mul(recoverableRatio).Round(2)
	monthly := recoverable.Div(decimal.NewFromInt(int64(term))).Round(2)
	// A term too long for the amount rounds the monthly share to zero, or
	// rounds it up far enough that the balancing final installment would
	// have to go to zero or below. Neither schedule is payable.
	final := recoverable.Sub(monthly.Mul(decimal.NewFromInt(int64(term - 1))))
	if monthly.LessThanOrEqual(decimal.Zero) || final.LessThanOrEqual(decimal.Zero) {
		return Split{}, ErrInvalidTerm
	}
	return Split{
		Recoverable: recoverable,
		Waiver:      total.Sub(recoverable),
		Monthly:     monthly,
	}, nil
}

// BuildSchedule generates the full installment set for a loan issued at
// issuedAt. Installment i falls due i calendar months after issuance, with
// month-end overflow following time.AddDate rollover. Every installment is the
// flat monthly amount except the last, which absorbs the rounding remainder so
// the schedule sums exactly to the recoverable amount.
func BuildSchedule(total decimal.Decimal, term int, issuedAt time.Time) ([]Installment, error) {
	split, err := ComputeSplit(total, term)
	if err != nil {
		return nil, err
	}
	installments := make([]Installment, 0, term)
	for i := 1; i <= term; i++ {
		amount := split.Monthly
		if i == term {
			amount = split.Recoverable.Sub(split.Monthly.Mul(decimal.NewFromInt(int64(term - 1))))
		}
		installments = append(installments, Installment{
			InstallmentID: uuid.New(),
			Sequence:      i,
			Amount:        amount,
			DueDate:       issuedAt.AddDate(0, i, 0),
			Status:        InstallmentPending,
		})
	}
	return installments, nil
}

// New issues a loan for a member, computing the split and materializing the
// installment schedule in one step.
func New(loanID, memberID, memberName string, total decimal.Decimal, term int, issuedAt time.Time) (*Loan, error) {
	split, err := ComputeSplit(total, term)
	if err != nil {
		return nil, err
	}
	installments, err := BuildSchedule(total, term, issuedAt)
	if err != nil {
		return nil, err
	}
	return &Loan{
		LoanID:            loanID,
		MemberID:          memberID,
		MemberName:        memberName,
		TotalAmount:       total,
		RecoverableAmount: split.Recoverable,
		WaiverAmount:      split.Waiver,
		Term:              term,
		IssuedDate:        issuedAt,
		Status:            StatusActive,
		Installments:      installments,
	}, nil
}

// Pay marks the installment with the given id as paid at paidAt and re-derives
// the loan status in the same mutation. Paying an unknown or already-paid
// installment is rejected, never silently accepted.
func (l *Loan) Pay(installmentID uuid.UUID, paidAt time.Time) error {
	found := false
	for i := range l.Installments {
		if l.Installments[i].InstallmentID != installmentID {
			continue
		}
		if l.Installments[i].Status == InstallmentPaid {
			return ErrInstallmentAlreadyPaid
		}
		at := paidAt
		l.Installments[i].Status = InstallmentPaid
		l.Installments[i].PaidDate = &at
		found = true
		break
	}
	if !found {
		return ErrInstallmentNotFound
	}
	l.Status = l.DeriveStatus()
	return nil
}

// DeriveStatus computes the loan status from the installment set: COMPLETED
// iff every installment is paid. Status is never set independently of this.
func (l *Loan) DeriveStatus() Status {
	for i := range l.Installments {
		if l.Installments[i].Status != InstallmentPaid {
			return StatusActive
		}
	}
	return StatusCompleted
}

// Recovered sums the amounts of all paid installments.
func (l *Loan) Recovered() decimal.Decimal {
	sum := decimal.Zero
	for i := range l.Installments {
		if l.Installments[i].Status == InstallmentPaid {
			sum = sum.Add(l.Installments[i].Amount)
		}
	}
	return sum
}

// Outstanding is the recoverable amount not yet repaid.
func (l *Loan) Outstanding() decimal.Decimal {
	return l.RecoverableAmount.Sub(l.Recovered())
}
