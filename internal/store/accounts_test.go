package store

import (
	"context"
	"testing"

	"github.com/Lucas1201-cloud/New-Vinted/internal/db"
)

func TestCreateAndGetAccount(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acc, err := CreateAccount(ctx, database, "seller@example.com", "Seller", "hash")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if acc.ID == 0 {
		t.Error("expected a generated id")
	}

	got, err := GetAccount(ctx, database, acc.ID)
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if got == nil || got.Email != "seller@example.com" || got.DisplayName != "Seller" {
		t.Errorf("unexpected account: %+v", got)
	}

	byEmail, err := GetAccountByEmail(ctx, database, "seller@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail == nil || byEmail.ID != acc.ID {
		t.Errorf("lookup by email returned %+v", byEmail)
	}
}

func TestGetAccountByEmailUnknown(t *testing.T) {
	database := db.NewTestDB(t)

	acc, err := GetAccountByEmail(context.Background(), database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail: %v", err)
	}
	if acc != nil {
		t.Errorf("expected nil for unknown email, got %+v", acc)
	}
}

func TestUpdateAccountPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	acc, err := CreateAccount(ctx, database, "seller@example.com", "Seller", "old-hash")
	if err != nil {
		t.Fatal(err)
	}

	if err := UpdateAccountPassword(ctx, database, acc.ID, "new-hash"); err != nil {
		t.Fatalf("UpdateAccountPassword: %v", err)
	}

	got, _ := GetAccount(ctx, database, acc.ID)
	if got.PasswordHash != "new-hash" {
		t.Errorf("expected updated hash, got %q", got.PasswordHash)
	}
}
