//go:build integration

package readstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/provider"
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/infra/readstore"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schemaDDL = `
CREATE TABLE providers (
    id                    uuid PRIMARY KEY,
    is_active             boolean NOT NULL DEFAULT true,
    default_slot_minutes  integer NOT NULL,
    buffer_before_minutes integer NOT NULL DEFAULT 0,
    buffer_after_minutes  integer NOT NULL DEFAULT 0
);

CREATE TABLE treatments (
    id                       uuid PRIMARY KEY,
    default_duration_minutes integer NOT NULL
);

CREATE TABLE provider_treatment_durations (
    provider_id      uuid NOT NULL REFERENCES providers (id),
    treatment_id     uuid NOT NULL REFERENCES treatments (id),
    duration_minutes integer NOT NULL,
    PRIMARY KEY (provider_id, treatment_id)
);

CREATE TABLE schedule_versions (
    id             uuid PRIMARY KEY,
    provider_id    uuid NOT NULL REFERENCES providers (id),
    version        integer NOT NULL,
    timezone       text NOT NULL,
    weekly         jsonb NOT NULL,
    breaks         jsonb,
    effective_from timestamptz,
    effective_to   timestamptz,
    UNIQUE (provider_id, version)
);

CREATE TABLE time_off (
    id          uuid PRIMARY KEY,
    provider_id uuid NOT NULL REFERENCES providers (id),
    kind        text NOT NULL,
    starts_at   timestamptz NOT NULL,
    ends_at     timestamptz NOT NULL,
    reason      text NOT NULL DEFAULT '',
    location_id uuid,
    chair_id    uuid
);

CREATE TABLE appointments (
    id          uuid PRIMARY KEY,
    provider_id uuid NOT NULL REFERENCES providers (id),
    status      text NOT NULL,
    starts_at   timestamptz NOT NULL,
    ends_at     timestamptz NOT NULL
);
`

type ReadStoreSuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool

	providerID  uuid.UUID
	treatmentID uuid.UUID
}

func TestReadStoreSuite(t *testing.T) {
	suite.Run(t, new(ReadStoreSuite))
}

func (s *ReadStoreSuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort(nat.Port("5432/tcp")).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	s.Require().NoError(err)

	dsn := fmt.Sprintf("postgres://test:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	_, err = pool.Exec(ctx, schemaDDL)
	s.Require().NoError(err)

	s.seed(ctx)
}

func (s *ReadStoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *ReadStoreSuite) seed(ctx context.Context) {
	s.providerID = uuid.New()
	s.treatmentID = uuid.New()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO providers (id, is_active, default_slot_minutes, buffer_before_minutes, buffer_after_minutes)
		VALUES ($1, true, 30, 10, 10)`,
		s.providerID)
	s.Require().NoError(err)

	_, err = s.pool.Exec(ctx, `
		INSERT INTO treatments (id, default_duration_minutes) VALUES ($1, 60)`,
		s.treatmentID)
	s.Require().NoError(err)

	_, err = s.pool.Exec(ctx, `
		INSERT INTO provider_treatment_durations (provider_id, treatment_id, duration_minutes)
		VALUES ($1, $2, 45)`,
		s.providerID, s.treatmentID)
	s.Require().NoError(err)

	weekly := `{"mon":[{"start":"09:00","end":"17:00"}]}`
	breaks := `{"mon":[{"start":"12:00","end":"13:00"}]}`
	_, err = s.pool.Exec(ctx, `
		INSERT INTO schedule_versions (id, provider_id, version, timezone, weekly, breaks, effective_from)
		VALUES ($1, $2, 1, 'Australia/Sydney', $3, $4, NULL),
		       ($5, $2, 2, 'Australia/Sydney', $3, NULL, '2026-01-01T00:00:00Z')`,
		uuid.New(), s.providerID, weekly, breaks, uuid.New())
	s.Require().NoError(err)

	_, err = s.pool.Exec(ctx, `
		INSERT INTO time_off (id, provider_id, kind, starts_at, ends_at, reason)
		VALUES ($1, $2, 'pto', '2026-03-02T00:00:00Z', '2026-03-03T00:00:00Z', 'leave')`,
		uuid.New(), s.providerID)
	s.Require().NoError(err)

	_, err = s.pool.Exec(ctx, `
		INSERT INTO appointments (id, provider_id, status, starts_at, ends_at)
		VALUES ($1, $2, 'booked',    '2026-03-02T01:00:00Z', '2026-03-02T01:30:00Z'),
		       ($3, $2, 'cancelled', '2026-03-02T02:00:00Z', '2026-03-02T02:30:00Z')`,
		uuid.New(), s.providerID, uuid.New())
	s.Require().NoError(err)
}

func (s *ReadStoreSuite) TestProviderFindByID() {
	ctx := context.Background()
	store := readstore.NewProviderReadStore(s.pool)

	p, err := store.FindByID(ctx, s.providerID)
	s.Require().NoError(err)
	s.Equal(s.providerID, p.ID)
	s.True(p.IsActive)
	s.Equal(30, p.DefaultSlotMinutes)
	s.Equal(10, p.BufferBeforeMinutes)
	s.Equal(45, p.DefaultDurations[s.treatmentID])

	_, err = store.FindByID(ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ReadStoreSuite) TestTreatmentFindByID() {
	ctx := context.Background()
	store := readstore.NewTreatmentReadStore(s.pool)

	tr, err := store.FindByID(ctx, s.treatmentID)
	s.Require().NoError(err)
	s.Equal(60, tr.DefaultDurationMinutes)

	_, err = store.FindByID(ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ReadStoreSuite) TestScheduleListVersions() {
	ctx := context.Background()
	store := readstore.NewScheduleReadStore(s.pool)

	versions, err := store.ListVersions(ctx, s.providerID)
	s.Require().NoError(err)
	s.Require().Len(versions, 2)

	s.Equal(1, versions[0].Version)
	s.Equal("Australia/Sydney", versions[0].Timezone)
	s.Nil(versions[0].EffectiveFrom)
	blocks := versions[0].Weekly[schedule.WeekdayMonday]
	s.Require().Len(blocks, 1)
	s.Equal(schedule.MustLocalTime("09:00"), blocks[0].Start)
	s.Equal(schedule.MustLocalTime("17:00"), blocks[0].End)
	s.Require().Len(versions[0].Breaks[schedule.WeekdayMonday], 1)

	s.Equal(2, versions[1].Version)
	s.Require().NotNil(versions[1].EffectiveFrom)
	s.Empty(versions[1].Breaks)

	// Unknown provider is an empty log, not an error.
	versions, err = store.ListVersions(ctx, uuid.New())
	s.Require().NoError(err)
	s.Empty(versions)
}

func (s *ReadStoreSuite) TestTimeOffListOverlapping() {
	ctx := context.Background()
	store := readstore.NewTimeOffReadStore(s.pool)

	offs, err := store.ListOverlapping(ctx, s.providerID,
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Require().Len(offs, 1)
	s.Equal(provider.TimeOffPTO, offs[0].Kind)

	// Touching at the boundary does not overlap.
	offs, err = store.ListOverlapping(ctx, s.providerID,
		time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Empty(offs)
}

func (s *ReadStoreSuite) TestAppointmentListOverlapping() {
	ctx := context.Background()
	store := readstore.NewAppointmentReadStore(s.pool)

	appts, err := store.ListOverlapping(ctx, s.providerID,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	// The cancelled appointment is filtered out.
	s.Require().Len(appts, 1)
	s.Equal(time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC), appts[0].Start.UTC())
}
