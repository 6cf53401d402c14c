package restock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/muhammadheryan/fulfillment/application/restock"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/stretchr/testify/assert"
)

type fakeLocker struct {
	keys []string
	err  error
}

func (l *fakeLocker) Obtain(_ context.Context, key string, _ time.Duration, _ *redislock.Options) (*redislock.Lock, error) {
	l.keys = append(l.keys, key)
	return nil, l.err
}

type fakeRestockApp struct {
	sweeps int
}

func (a *fakeRestockApp) ReceiveStock(context.Context, uint64, int64) (*model.SKUDetail, error) {
	return nil, nil
}

func (a *fakeRestockApp) RetryPendingActivations(context.Context) (int, error) {
	a.sweeps++
	return 0, nil
}

func TestWorker_Sweep(t *testing.T) {
	tests := []struct {
		name    string
		lockErr error
	}{
		{name: "lock held by another instance", lockErr: redislock.ErrNotObtained},
		{name: "redis unavailable", lockErr: errors.New("dial tcp: connection refused")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			locker := &fakeLocker{err: tt.lockErr}
			app := &fakeRestockApp{}

			ran := restock.NewWorker(app, locker, time.Minute, 30*time.Second).Sweep(context.Background())

			assert.False(t, ran)
			assert.Zero(t, app.sweeps)
			assert.Equal(t, []string{"restock:activation_sweep"}, locker.keys)
		})
	}
}
