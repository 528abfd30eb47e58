package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dotacourier/match-api/internal/models"
)

// MockRedis implements RedisCmdable over an in-memory map.
type MockRedis struct {
	values   map[string]string
	getCalls int
	setCalls int
	lastTTL  time.Duration
	setErr   error
}

func NewMockRedis() *MockRedis {
	return &MockRedis{values: make(map[string]string)}
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.getCalls++
	if v, ok := m.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.setCalls++
	m.lastTTL = expiration
	if m.setErr != nil {
		return redis.NewStatusResult("", m.setErr)
	}
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func TestRedis_MissComputesAndStores(t *testing.T) {
	rdb := NewMockRedis()
	c := NewRedis(rdb, 10*time.Minute, nil)

	perf, hit, err := c.GetOrCompute(context.Background(), "417817047", "7131970019", func(ctx context.Context) (*models.PlayerPerformance, error) {
		return testPerf("7131970019"), nil
	})
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	if hit {
		t.Error("hit = true on empty redis, want false")
	}
	if perf.MatchID != "7131970019" {
		t.Errorf("MatchID = %q, want 7131970019", perf.MatchID)
	}

	if rdb.setCalls != 1 {
		t.Errorf("Set calls = %d, want 1", rdb.setCalls)
	}
	if rdb.lastTTL != 10*time.Minute {
		t.Errorf("TTL = %v, want 10m", rdb.lastTTL)
	}
	if _, ok := rdb.values["perf:417817047:7131970019"]; !ok {
		t.Errorf("stored keys = %v, want perf:417817047:7131970019", rdb.values)
	}
}

func TestRedis_HitSkipsCompute(t *testing.T) {
	rdb := NewMockRedis()
	payload, _ := json.Marshal(testPerf("7131970019"))
	rdb.values["perf:417817047:7131970019"] = string(payload)

	c := NewRedis(rdb, 0, nil)

	perf, hit, err := c.GetOrCompute(context.Background(), "417817047", "7131970019", func(ctx context.Context) (*models.PlayerPerformance, error) {
		t.Fatal("compute ran on a warm cache")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	if !hit {
		t.Error("hit = false on warm cache, want true")
	}
	if perf.MatchID != "7131970019" || perf.GameMode != models.AllPick {
		t.Errorf("round-tripped record = %+v", perf)
	}
}

func TestRedis_UndecodableEntryRecomputes(t *testing.T) {
	rdb := NewMockRedis()
	rdb.values["perf:1:2"] = "{not json"
	c := NewRedis(rdb, 0, nil)

	computed := false
	_, hit, err := c.GetOrCompute(context.Background(), "1", "2", func(ctx context.Context) (*models.PlayerPerformance, error) {
		computed = true
		return testPerf("2"), nil
	})
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	if hit || !computed {
		t.Error("undecodable entry must fall through to compute")
	}
}

func TestRedis_StoreFailureStillReturnsRecord(t *testing.T) {
	rdb := NewMockRedis()
	rdb.setErr = context.DeadlineExceeded
	c := NewRedis(rdb, 0, nil)

	perf, _, err := c.GetOrCompute(context.Background(), "1", "2", func(ctx context.Context) (*models.PlayerPerformance, error) {
		return testPerf("2"), nil
	})
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v, want nil despite Set failure", err)
	}
	if perf == nil {
		t.Fatal("perf = nil, want the computed record")
	}
}
