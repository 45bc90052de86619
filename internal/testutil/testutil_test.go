package testutil

import (
	"context"
	"testing"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewStore_Usable(t *testing.T) {
	db := NewStore(t)
	if db == nil {
		t.Fatal("expected non-nil store")
	}
	if err := db.DB().PingContext(context.Background()); err != nil {
		t.Fatalf("PingContext: %v", err)
	}
}

func TestNewCard_Options(t *testing.T) {
	c := NewCard(WithID("fixture"), WithRating(4.9), WithAnnualFee(0), WithLounge())
	if c.ID != "fixture" || c.Slug != "fixture" {
		t.Errorf("WithID: id=%q slug=%q", c.ID, c.Slug)
	}
	if c.Rating != 4.9 {
		t.Errorf("rating = %v, want 4.9", c.Rating)
	}
	if c.AnnualFee != 0 || c.AnnualFeeWaiverSpend != 0 {
		t.Errorf("WithAnnualFee(0) should clear the waiver threshold")
	}
	if !c.LoungeAccess {
		t.Error("WithLounge not applied")
	}
}
