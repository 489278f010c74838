package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dcastaneda/mercato-backend/pkg/config"
	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "mercato",
		ExpirationMinutes: 30,
	}
	now := time.Now().UTC()
	userID := uuid.New()
	storeID := uuid.New()
	storeType := enums.StoreTypeVendor

	payload := AccessTokenPayload{
		UserID:        userID,
		ActiveStoreID: &storeID,
		StoreType:     &storeType,
	}

	token, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("expected user_id %s, got %s", userID, claims.UserID)
	}
	if claims.ActiveStoreID == nil || *claims.ActiveStoreID != storeID {
		t.Fatalf("active store id not preserved")
	}
	if claims.StoreType == nil || *claims.StoreType != storeType {
		t.Fatalf("store type mismatch")
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v", exp.UTC(), claims.ExpiresAt.UTC())
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	mintCfg := config.JWTConfig{Secret: "secret", Issuer: "mercato", ExpirationMinutes: 30}
	token, err := MintAccessToken(mintCfg, time.Now().UTC(), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	parseCfg := config.JWTConfig{Secret: "other", Issuer: "mercato", ExpirationMinutes: 30}
	if _, err := ParseAccessToken(parseCfg, token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestMintRejectsInvalidStoreType(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "mercato", ExpirationMinutes: 30}
	bad := enums.StoreType("warehouse")
	_, err := MintAccessToken(cfg, time.Now().UTC(), AccessTokenPayload{UserID: uuid.New(), StoreType: &bad})
	if err == nil {
		t.Fatal("expected invalid store type to be rejected")
	}
}
