package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type fakeReconciler struct {
	applied int
	err     error
	calls   int
}

func (f *fakeReconciler) Reconcile(context.Context) (int, error) {
	f.calls++
	return f.applied, f.err
}

type fakeCleaner struct{ calls int }

func (f *fakeCleaner) CleanupResetCodes(context.Context) (int64, error) {
	f.calls++
	return 2, nil
}

func TestRegister(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewScheduler(logger)

	require.NoError(t, Register(s, "@every 5m", &fakeReconciler{}, &fakeCleaner{}))
	require.Equal(t, 2, s.Len())
}

func TestRegister_InvalidSpec(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewScheduler(logger)

	err := Register(s, "every now and then", &fakeReconciler{}, &fakeCleaner{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "opay-reconcile")
	require.Zero(t, s.Len())
}

func TestWrap_LogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewScheduler(logger)

	s.wrap("broken", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		require.True(t, ok)
		return errors.New("mongo down")
	})()

	entry := hook.LastEntry()
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "broken", entry.Data["job"])
}

func TestScheduler_RunsJobs(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewScheduler(logger)
	ran := make(chan struct{}, 1)

	require.NoError(t, s.Add("tick", "@every 1s", func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))
	s.Start()
	defer s.Stop(context.Background())

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
