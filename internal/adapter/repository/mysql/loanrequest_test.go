package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/pkg/id"
)

func makeRequest(memberID string) *domain.LoanRequest {
	return &domain.LoanRequest{
		RequestID:   id.NewID32(),
		MemberID:    memberID,
		MemberName:  "Asha Rahman",
		Amount:      decimal.NewFromInt(10000),
		Term:        5,
		RequestDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
	}
}

func TestRequestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	r := makeRequest("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, r.RequestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Status != domain.StatusPending || got.Term != 5 {
		t.Errorf("unexpected request: %+v", got)
	}
}

func TestRequestSaveStatusTransition(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	r := makeRequest("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.Status = domain.StatusApproved
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, r.RequestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("status transition not persisted: %s", got.Status)
	}
}

func TestRequestGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)

	_, err := repo.GetByRequestID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRequestListByMemberID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	m1 := id.NewID32()
	for _, member := range []string{m1, m1, id.NewID32()} {
		if err := repo.Create(ctx, makeRequest(member)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByMemberID(ctx, m1)
	if err != nil {
		t.Fatalf("ListByMemberID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 requests for member, got %d", len(got))
	}
}
