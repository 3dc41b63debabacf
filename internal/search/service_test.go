package search

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"gymbook/internal/gym"
	"gymbook/internal/logger"
	"gymbook/internal/slot"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type stubGymRepo struct {
	gyms  []gym.Gym
	calls int
}

func (s *stubGymRepo) Create(ctx context.Context, g *gym.Gym) error { panic("not used") }

func (s *stubGymRepo) GetByID(ctx context.Context, gymID string) (*gym.Gym, error) {
	panic("not used")
}

func (s *stubGymRepo) FindByEmail(ctx context.Context, email string) (*gym.Gym, error) {
	panic("not used")
}

func (s *stubGymRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	panic("not used")
}

func (s *stubGymRepo) SearchByLocation(ctx context.Context, locationSubstring string) ([]gym.Gym, error) {
	s.calls++
	var out []gym.Gym
	needle := strings.ToLower(locationSubstring)
	for _, g := range s.gyms {
		if strings.Contains(strings.ToLower(g.Location), needle) {
			out = append(out, g)
		}
	}
	return out, nil
}

type stubSlotRegistry struct {
	slots []slot.TimeSlot
}

func (s *stubSlotRegistry) CreateSlot(ctx context.Context, gymID string, req slot.CreateTimeSlotRequest) (*slot.TimeSlot, error) {
	panic("not used")
}

func (s *stubSlotRegistry) ListAvailable(ctx context.Context, gymID, date string) ([]slot.TimeSlot, error) {
	var out []slot.TimeSlot
	for _, ts := range s.slots {
		if ts.GymID == gymID && ts.Date == date && ts.IsAvailable {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (s *stubSlotRegistry) ListByGym(ctx context.Context, gymID string) ([]slot.TimeSlot, error) {
	panic("not used")
}

func (s *stubSlotRegistry) TryReserve(ctx context.Context, gymID, slotID string) error {
	panic("not used")
}

func (s *stubSlotRegistry) Release(ctx context.Context, gymID, slotID string) error {
	panic("not used")
}

func fixtureGyms() []gym.Gym {
	return []gym.Gym{
		{GymID: "g1", GymName: "Iron Works", Location: "Downtown Springfield", Status: "active"},
		{GymID: "g2", GymName: "Pulse Gym", Location: "Springfield Heights", Status: "active"},
		{GymID: "g3", GymName: "Harbor Fit", Location: "Shelbyville", Status: "active"},
	}
}

func fixtureSlots() []slot.TimeSlot {
	return []slot.TimeSlot{
		{GymID: "g1", SlotID: "s1", Date: "2024-06-01", StartTime: "09:00", Label: "09:00 - 10:00", IsAvailable: true},
		{GymID: "g1", SlotID: "s2", Date: "2024-06-01", StartTime: "11:00", Label: "11:00 - 12:00", IsAvailable: false},
		{GymID: "g1", SlotID: "s3", Date: "2024-06-02", StartTime: "09:00", Label: "09:00 - 10:00", IsAvailable: true},
		{GymID: "g2", SlotID: "s4", Date: "2024-06-01", StartTime: "18:00", Label: "18:00 - 19:00", IsAvailable: true},
	}
}

func TestSearchGyms_CaseInsensitiveLocation(t *testing.T) {
	gyms := &stubGymRepo{gyms: fixtureGyms()}
	slots := &stubSlotRegistry{slots: fixtureSlots()}
	svc := NewService(gyms, slots, nil)

	results, err := svc.SearchGyms(context.Background(), "SPRINGFIELD", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "g1", results[0].Gym.GymID)
	assert.Equal(t, "g2", results[1].Gym.GymID)
}

func TestSearchGyms_OnlyOpenSlotsForDate(t *testing.T) {
	gyms := &stubGymRepo{gyms: fixtureGyms()}
	slots := &stubSlotRegistry{slots: fixtureSlots()}
	svc := NewService(gyms, slots, nil)

	results, err := svc.SearchGyms(context.Background(), "downtown", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// s2 is reserved and s3 is a different date
	require.Len(t, results[0].AvailableSlots, 1)
	assert.Equal(t, "s1", results[0].AvailableSlots[0].SlotID)
}

func TestSearchGyms_NoMatches(t *testing.T) {
	gyms := &stubGymRepo{gyms: fixtureGyms()}
	slots := &stubSlotRegistry{}
	svc := NewService(gyms, slots, nil)

	results, err := svc.SearchGyms(context.Background(), "atlantis", "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchGyms_CacheMissThenStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewGymCache(client, time.Minute)

	gyms := &stubGymRepo{gyms: fixtureGyms()}
	slots := &stubSlotRegistry{slots: fixtureSlots()}
	svc := NewService(gyms, slots, cache)

	matched := []gym.Gym{fixtureGyms()[0], fixtureGyms()[1]}
	payload, err := json.Marshal(matched)
	require.NoError(t, err)

	mock.ExpectGet("search:gyms:springfield").RedisNil()
	mock.ExpectSet("search:gyms:springfield", payload, time.Minute).SetVal("OK")

	results, err := svc.SearchGyms(context.Background(), "Springfield", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, gyms.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchGyms_CacheHitSkipsStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewGymCache(client, time.Minute)

	gyms := &stubGymRepo{gyms: fixtureGyms()}
	slots := &stubSlotRegistry{slots: fixtureSlots()}
	svc := NewService(gyms, slots, cache)

	cached := []gym.Gym{fixtureGyms()[0]}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("search:gyms:springfield").SetVal(string(payload))

	results, err := svc.SearchGyms(context.Background(), "Springfield", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// gym rows come from the cache, availability still from the registry
	assert.Equal(t, 0, gyms.calls)
	require.Len(t, results[0].AvailableSlots, 1)
	assert.Equal(t, "s1", results[0].AvailableSlots[0].SlotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGymCache_CorruptEntryIsDropped(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewGymCache(client, time.Minute)

	mock.ExpectGet("search:gyms:springfield").SetVal("{not json")
	mock.ExpectDel("search:gyms:springfield").SetVal(1)

	gyms, ok := cache.Get(context.Background(), "Springfield")
	assert.False(t, ok)
	assert.Nil(t, gyms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGymCache_KeyNormalization(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewGymCache(client, time.Minute)

	mock.ExpectGet("search:gyms:downtown springfield").RedisNil()

	_, ok := cache.Get(context.Background(), "  Downtown Springfield ")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
