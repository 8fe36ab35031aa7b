package loanrequest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "fundcircle-backend/internal/domain/loan"
	domainRequest "fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/internal/domain/uow"
	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/internal/testutil/loanmock"
	"fundcircle-backend/internal/testutil/requestmock"
	"fundcircle-backend/internal/testutil/usermock"
	"fundcircle-backend/internal/testutil/uowmock"
)

func TestUsecase_Submit(t *testing.T) {
	approvedMember := func() *user.User {
		return &user.User{
			UserID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Name:   "Asha Rahman",
			Role:   user.RoleMember,
			Status: user.StatusApproved,
		}
	}

	tests := []struct {
		name    string
		in      SubmitInput
		setup   func() *Usecase
		wantErr error
		check   func(*domainRequest.LoanRequest) error
	}{
		{
			name: "happy path snapshots member name",
			in:   SubmitInput{MemberID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: decimal.NewFromInt(10000), Term: 5},
			setup: func() *Usecase {
				users := &usermock.Repo{
					GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) {
						return approvedMember(), nil
					},
				}
				reqs := &requestmock.Repo{
					CreateFn: func(ctx context.Context, r *domainRequest.LoanRequest) error {
						if r.Status != domainRequest.StatusPending {
							t.Fatalf("new request must be PENDING, got %s", r.Status)
						}
						if r.MemberName != "Asha Rahman" {
							t.Fatalf("member name not snapshotted: %q", r.MemberName)
						}
						return nil
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Users: users, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			check: func(r *domainRequest.LoanRequest) error {
				if r == nil {
					return errors.New("request is nil")
				}
				if len(r.RequestID) != 32 {
					return errors.New("request id not assigned")
				}
				return nil
			},
		},
		{
			name:    "zero amount rejected before any repo call",
			in:      SubmitInput{MemberID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: decimal.Zero, Term: 5},
			setup:   func() *Usecase { return NewUsecase(&requestmock.Repo{}, uowmock.New()) },
			wantErr: domainRequest.ErrInvalidAmount,
		},
		{
			name:    "negative term rejected",
			in:      SubmitInput{MemberID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: decimal.NewFromInt(100), Term: -1},
			setup:   func() *Usecase { return NewUsecase(&requestmock.Repo{}, uowmock.New()) },
			wantErr: domainRequest.ErrInvalidTerm,
		},
		{
			name: "unknown member",
			in:   SubmitInput{MemberID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Amount: decimal.NewFromInt(100), Term: 3},
			setup: func() *Usecase {
				users := &usermock.Repo{
					GetByUserIDFn: func(context.Context, string) (*user.User, error) {
						return nil, errors.New("no rows")
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Users: users, Requests: &requestmock.Repo{}})
				return NewUsecase(&requestmock.Repo{}, tx)
			},
			wantErr: user.ErrNotFound,
		},
		{
			name: "pending member cannot file",
			in:   SubmitInput{MemberID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: decimal.NewFromInt(100), Term: 3},
			setup: func() *Usecase {
				users := &usermock.Repo{
					GetByUserIDFn: func(context.Context, string) (*user.User, error) {
						m := approvedMember()
						m.Status = user.StatusPending
						return m, nil
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Users: users, Requests: &requestmock.Repo{}})
				return NewUsecase(&requestmock.Repo{}, tx)
			},
			wantErr: user.ErrInvalidStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.setup()
			got, err := u.Submit(context.Background(), tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.check != nil {
				if err := tc.check(got); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func TestUsecase_Approve(t *testing.T) {
	pendingRequest := func() *domainRequest.LoanRequest {
		return &domainRequest.LoanRequest{
			ID:          7,
			RequestID:   "cccccccccccccccccccccccccccccccc",
			MemberID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			MemberName:  "Asha Rahman",
			Amount:      decimal.NewFromInt(10000),
			Term:        5,
			RequestDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Status:      domainRequest.StatusPending,
		}
	}

	tests := []struct {
		name       string
		setup      func() *Usecase
		wantErr    error
		wantAnyErr bool
		check      func(*domainLoan.Loan) error
	}{
		{
			name: "happy path pending -> approved with loan",
			setup: func() *Usecase {
				reqs := &requestmock.Repo{
					GetByRequestIDForUpdateFn: func(ctx context.Context, requestID string) (*domainRequest.LoanRequest, error) {
						return pendingRequest(), nil
					},
					SaveFn: func(ctx context.Context, r *domainRequest.LoanRequest) error {
						if r.Status != domainRequest.StatusApproved {
							t.Fatalf("expected status=APPROVED, got %s", r.Status)
						}
						return nil
					},
				}
				loans := &loanmock.Repo{
					CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
						if !l.TotalAmount.Equal(decimal.NewFromInt(10000)) {
							t.Fatalf("loan total mismatch: %s", l.TotalAmount)
						}
						if len(l.Installments) != 5 {
							t.Fatalf("expected 5 installments, got %d", len(l.Installments))
						}
						return nil
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Loans: loans, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			check: func(l *domainLoan.Loan) error {
				if l == nil {
					return errors.New("loan is nil")
				}
				if !l.RecoverableAmount.Equal(decimal.NewFromInt(7000)) {
					return errors.New("recoverable mismatch")
				}
				if !l.WaiverAmount.Equal(decimal.NewFromInt(3000)) {
					return errors.New("waiver mismatch")
				}
				return nil
			},
		},
		{
			name: "request not found",
			setup: func() *Usecase {
				reqs := &requestmock.Repo{
					GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
						return nil, errors.New("no rows")
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Loans: &loanmock.Repo{}, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			wantErr: domainRequest.ErrNotFound,
		},
		{
			name: "already approved is rejected, not re-processed",
			setup: func() *Usecase {
				reqs := &requestmock.Repo{
					GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
						r := pendingRequest()
						r.Status = domainRequest.StatusApproved
						return r, nil
					},
					SaveFn: func(context.Context, *domainRequest.LoanRequest) error {
						t.Fatalf("finalized request must not be saved again")
						return nil
					},
				}
				loans := &loanmock.Repo{
					CreateFn: func(context.Context, *domainLoan.Loan) error {
						t.Fatalf("no second loan may be created")
						return nil
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Loans: loans, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			wantErr: domainRequest.ErrAlreadyFinalized,
		},
		{
			name: "already rejected stays rejected",
			setup: func() *Usecase {
				reqs := &requestmock.Repo{
					GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
						r := pendingRequest()
						r.Status = domainRequest.StatusRejected
						return r, nil
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Loans: &loanmock.Repo{}, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			wantErr: domainRequest.ErrAlreadyFinalized,
		},
		{
			name: "loan write failure leaves the request pending",
			setup: func() *Usecase {
				reqs := &requestmock.Repo{
					GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
						return pendingRequest(), nil
					},
					SaveFn: func(context.Context, *domainRequest.LoanRequest) error {
						t.Fatalf("status must not flip when the loan write fails")
						return nil
					},
				}
				loans := &loanmock.Repo{
					CreateFn: func(context.Context, *domainLoan.Loan) error {
						return errors.New("insert failed")
					},
				}
				tx := uowmock.New().WithRepos(uow.Repos{Loans: loans, Requests: reqs})
				return NewUsecase(reqs, tx)
			},
			wantAnyErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.setup()
			got, err := u.Approve(context.Background(), "cccccccccccccccccccccccccccccccc")
			if tc.wantAnyErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.check != nil {
				if err := tc.check(got); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func TestUsecase_Reject(t *testing.T) {
	t.Run("pending -> rejected", func(t *testing.T) {
		reqs := &requestmock.Repo{
			GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
				return &domainRequest.LoanRequest{RequestID: "cccccccccccccccccccccccccccccccc", Status: domainRequest.StatusPending}, nil
			},
			SaveFn: func(ctx context.Context, r *domainRequest.LoanRequest) error {
				if r.Status != domainRequest.StatusRejected {
					t.Fatalf("expected status=REJECTED, got %s", r.Status)
				}
				return nil
			},
		}
		tx := uowmock.New().WithRepos(uow.Repos{Requests: reqs})
		u := NewUsecase(reqs, tx)

		out, err := u.Reject(context.Background(), "cccccccccccccccccccccccccccccccc")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Status != domainRequest.StatusRejected {
			t.Fatalf("returned request not rejected: %s", out.Status)
		}
	})

	t.Run("finalized request refused", func(t *testing.T) {
		reqs := &requestmock.Repo{
			GetByRequestIDForUpdateFn: func(context.Context, string) (*domainRequest.LoanRequest, error) {
				return &domainRequest.LoanRequest{Status: domainRequest.StatusApproved}, nil
			},
		}
		tx := uowmock.New().WithRepos(uow.Repos{Requests: reqs})
		u := NewUsecase(reqs, tx)

		if _, err := u.Reject(context.Background(), "cccccccccccccccccccccccccccccccc"); !errors.Is(err, domainRequest.ErrAlreadyFinalized) {
			t.Fatalf("want ErrAlreadyFinalized, got %v", err)
		}
	})
}
