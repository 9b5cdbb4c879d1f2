package store

import (
	"context"
	"testing"
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/db"
)

func TestRevokeAndCheckToken(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("unknown token should not be revoked")
	}

	if err := RevokeToken(ctx, database, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err = IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatal(err)
	}
	if !revoked {
		t.Error("token should be revoked")
	}
}

func TestRevokeTokenIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	if err := RevokeToken(ctx, database, "dup-jti", exp); err != nil {
		t.Fatal(err)
	}
	if err := RevokeToken(ctx, database, "dup-jti", exp); err != nil {
		t.Errorf("revoking twice should not error: %v", err)
	}
}
