package account

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=staff_directory.go -destination=mocks/staff_directory_mock.go -package=mocks

type AccountStore interface {
	ListStaff(ctx context.Context) ([]User, error)
	SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error
}

const staffKey = "staff"

type StaffDirectory struct {
	store AccountStore
	cache *cache.Cache
}

func NewStaffDirectory(store AccountStore, ttl time.Duration) *StaffDirectory {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &StaffDirectory{
		store: store,
		cache: cache.New(ttl, 5*ttl),
	}
}

func (d *StaffDirectory) ListStaff(ctx context.Context) ([]User, error) {
	cached, found := d.cache.Get(staffKey)

	if found {
		return cached.([]User), nil
	}

	staff, err := d.store.ListStaff(ctx)

	if err != nil {
		return nil, err
	}

	d.cache.Set(staffKey, staff, cache.DefaultExpiration)

	return staff, nil
}

func (d *StaffDirectory) SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error {
	if err := d.store.SetNotificationsEnabled(ctx, id, enabled); err != nil {
		return err
	}

	d.cache.Delete(staffKey)

	return nil
}
