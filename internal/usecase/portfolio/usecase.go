package portfolio

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"fundcircle-backend/internal/domain/deposit"
	"fundcircle-backend/internal/domain/loan"
	"fundcircle-backend/internal/domain/user"
)

const (
	summaryCacheKey = "portfolio:summary"
	summaryCacheTTL = 5 * time.Minute
)

// Usecase computes read-only rollups over the full entity set. Nothing is
// maintained incrementally; every figure is recomputed from the current
// snapshot. Fetch failures propagate rather than degrade to zeros.
type Usecase struct {
	users    user.Repository
	deposits deposit.Repository
	loans    loan.Repository
	rdb      *redis.Client
}

func NewUsecase(users user.Repository, deposits deposit.Repository, loans loan.Repository, rdb *redis.Client) *Usecase {
	return &Usecase{users: users, deposits: deposits, loans: loans, rdb: rdb}
}

type Summary struct {
	TotalDeposits   decimal.Decimal `json:"total_deposits"`
	TotalIssued     decimal.Decimal `json:"total_issued"`
	TotalWaivers    decimal.Decimal `json:"total_waivers"`
	TotalRecoveries decimal.Decimal `json:"total_recoveries"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	TotalMembers    int             `json:"total_members"`
	ComputedAt      time.Time       `json:"computed_at"`
}

type Contribution struct {
	MemberID   string          `json:"member_id"`
	MemberName string          `json:"member_name"`
	Total      decimal.Decimal `json:"total"`
}

// Summary returns the portfolio rollup, served from the Redis cache when a
// fresh snapshot exists. A stale dashboard is acceptable; a partial one is not,
// so cache entries are only ever whole snapshots.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, summaryCacheKey).Bytes(); err == nil {
			var s Summary
			if json.Unmarshal(raw, &s) == nil {
				return &s, nil
			}
		}
	}
	s, err := u.computeSummary(ctx)
	if err != nil {
		return nil, err
	}
	if u.rdb != nil {
		if raw, err := json.Marshal(s); err == nil {
			u.rdb.Set(ctx, summaryCacheKey, raw, summaryCacheTTL)
		}
	}
	return s, nil
}

// RefreshSummary recomputes the rollup and overwrites the cache; the
// scheduler calls this on its daily tick.
func (u *Usecase) RefreshSummary(ctx context.Context) (*Summary, error) {
	s, err := u.computeSummary(ctx)
	if err != nil {
		return nil, err
	}
	if u.rdb != nil {
		if raw, err := json.Marshal(s); err == nil {
			if err := u.rdb.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
				return s, err
			}
		}
	}
	return s, nil
}

func (u *Usecase) computeSummary(ctx context.Context) (*Summary, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	deposits, err := u.deposits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totalDeposits := decimal.Zero
	for _, d := range deposits {
		totalDeposits = totalDeposits.Add(d.Amount)
	}
	totalIssued, totalWaivers, totalRecoveries := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range loans {
		totalIssued = totalIssued.Add(l.TotalAmount)
		totalWaivers = totalWaivers.Add(l.WaiverAmount)
		totalRecoveries = totalRecoveries.Add(l.Recovered())
	}

	return &Summary{
		TotalDeposits:   totalDeposits,
		TotalIssued:     totalIssued,
		TotalWaivers:    totalWaivers,
		TotalRecoveries: totalRecoveries,
		CurrentBalance:  totalDeposits.Sub(totalIssued).Add(totalRecoveries),
		TotalMembers:    len(users),
		ComputedAt:      time.Now().UTC(),
	}, nil
}

// Contributions groups deposits by member and drops zero totals, so the
// breakdown only lists members who actually funded the circle.
func (u *Usecase) Contributions(ctx context.Context) ([]Contribution, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	deposits, err := u.deposits.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(users))
	for _, d := range deposits {
		cur, ok := totals[d.MemberID]
		if !ok {
			cur = decimal.Zero
		}
		totals[d.MemberID] = cur.Add(d.Amount)
	}

	out := make([]Contribution, 0, len(users))
	for _, usr := range users {
		total, ok := totals[usr.UserID]
		if !ok || !total.IsPositive() {
			continue
		}
		out = append(out, Contribution{MemberID: usr.UserID, MemberName: usr.Name, Total: total})
	}
	return out, nil
}

// Outstanding reports the unpaid recoverable debt of one loan.
func (u *Usecase) Outstanding(ctx context.Context, loanID string) (decimal.Decimal, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return decimal.Zero, loan.ErrNotFound
	}
	return l.Outstanding(), nil
}

// OverdueCount counts pending installments already past due at now; the
// scheduler logs this daily.
func (u *Usecase) OverdueCount(ctx context.Context, now time.Time) (int, error) {
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range loans {
		for i := range l.Installments {
			if l.Installments[i].Status == loan.InstallmentPending && l.Installments[i].DueDate.Before(now) {
				n++
			}
		}
	}
	return n, nil
}
