package storage

import (
	"context"
	"testing"

	"github.com/SergeyKozhin/presenter-bot/internal/store/memory"
	"go.uber.org/zap"
)

func TestOpenDriver(t *testing.T) {
	logger := zap.NewNop().Sugar()

	st, err := OpenDriver(context.Background(), logger, DriverMemory)
	if err != nil {
		t.Fatalf("memory driver: %v", err)
	}
	if _, ok := st.(*memory.Store); !ok {
		t.Errorf("memory driver returned %T", st)
	}

	if _, err := OpenDriver(context.Background(), logger, "mongo"); err == nil {
		t.Error("unknown driver accepted")
	}
}
