package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "flex_reviews/internal/adapters/redis"
)

type token struct {
	Token string `json:"token"`
	Exp   int64  `json:"exp"`
}

func newTestCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0), mr
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := token{Token: "abc", Exp: 1700000000000}
	if err := c.Set(ctx, "hostaway:token", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out token
	ok, err := c.Get(ctx, "hostaway:token", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("round trip: %+v", out)
	}
}

func TestCache_MissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	var out token
	ok, err := c.Get(context.Background(), "nope", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", token{Token: "x"}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var out token
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected key expired after TTL")
	}
}

func TestCache_Del(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "k", token{Token: "x"}, 60)
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}

	var out token
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected key gone after delete")
	}
}

func TestCache_ServerDownReturnsError(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	var out token
	if _, err := c.Get(context.Background(), "k", &out); err == nil {
		t.Fatal("expected error when server is unreachable")
	}
}
