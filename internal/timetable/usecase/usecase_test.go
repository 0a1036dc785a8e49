package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  timetable:
    hidden_location_ids: "3"
    class_program_id: 20
`

type staticClock struct {
	now time.Time
}

func (c *staticClock) Now() time.Time {
	return c.now
}

type fakeCatalog struct {
	locations    []mindbody.Location
	programs     []mindbody.Program
	sessionTypes []mindbody.SessionType
	classes      []mindbody.Class
	times        []mindbody.AppointmentTime

	calls map[string]int
}

func (c *fakeCatalog) count(name string) {
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[name]++
}

func (c *fakeCatalog) GetLocations(context.Context) ([]mindbody.Location, error) {
	c.count("locations")
	return c.locations, nil
}

func (c *fakeCatalog) GetPrograms(context.Context) ([]mindbody.Program, error) {
	c.count("programs")
	return c.programs, nil
}

func (c *fakeCatalog) GetSessionTypes(context.Context) ([]mindbody.SessionType, error) {
	c.count("sessionTypes")
	return c.sessionTypes, nil
}

func (c *fakeCatalog) GetClassSchedule(_ context.Context, in mindbody.GetClassScheduleInput) ([]mindbody.Class, error) {
	c.count("classSchedule")
	return c.classes, nil
}

func (c *fakeCatalog) GetAppointmentTimes(_ context.Context, in mindbody.GetAppointmentTimesInput) ([]mindbody.AppointmentTime, error) {
	c.count("appointmentTimes")
	return c.times, nil
}

type memoryFilterCache struct {
	stored *FiltersOutput
}

func (m *memoryFilterCache) GetFilters(context.Context) (*FiltersOutput, bool) {
	return m.stored, m.stored != nil
}

func (m *memoryFilterCache) SetFilters(_ context.Context, out *FiltersOutput) {
	m.stored = out
}

func newTestUsecase(t *testing.T, catalog *fakeCatalog) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	return New(Dependency{
		Catalog:    catalog,
		Cache:      &memoryFilterCache{},
		Validator:  v10,
		Config:     cfg,
		Clock:      &staticClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})
}

func TestExpandSlots(t *testing.T) {
	times := []mindbody.AppointmentTime{
		{StartDateTime: "2025-06-01T09:00:00", StaffID: 7},
		{StartDateTime: "not-a-timestamp"},
		{StartDateTime: "2025-06-01T10:30:00"},
	}

	slots := ExpandSlots(times)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2 (malformed entry skipped)", len(slots))
	}
	if slots[0].StartDateTime != "2025-06-01T09:00:00" || slots[0].EndDateTime != "2025-06-01T09:30:00" {
		t.Fatalf("slot[0] = %+v, want 30-minute window", slots[0])
	}
	if slots[0].StaffID != 7 {
		t.Fatalf("slot[0].StaffID = %d, want 7", slots[0].StaffID)
	}
	if slots[1].EndDateTime != "2025-06-01T11:00:00" {
		t.Fatalf("slot[1].EndDateTime = %q, want 2025-06-01T11:00:00", slots[1].EndDateTime)
	}
}

func TestFilters(t *testing.T) {
	catalog := &fakeCatalog{
		locations: []mindbody.Location{
			{ID: 1, Name: "City Studio", HasClasses: true},
			{ID: 2, Name: "Warehouse", HasClasses: false},
			{ID: 3, Name: "Private Annex", HasClasses: true},
		},
		programs: []mindbody.Program{
			{ID: 10, Name: "Personal Training", ScheduleType: "Appointment"},
			{ID: 20, Name: "Group Classes", ScheduleType: "Class"},
			{ID: 21, Name: "Staff Only", ScheduleType: "Class"},
			{ID: 30, Name: "Enrollments", ScheduleType: "Enrollment"},
		},
		sessionTypes: []mindbody.SessionType{{ID: 100, Name: "PT 30"}},
	}
	uc := newTestUsecase(t, catalog)

	out, err := uc.Filters(t.Context())
	if err != nil {
		t.Fatalf("Filters() error = %v", err)
	}

	if len(out.Locations) != 1 || out.Locations[0].ID != 1 {
		t.Fatalf("Locations = %+v, want only the visible class location", out.Locations)
	}

	if len(out.Programs) != 2 {
		t.Fatalf("Programs = %+v, want appointment program plus the public class program", out.Programs)
	}
	for _, p := range out.Programs {
		if p.ID != 10 && p.ID != 20 {
			t.Fatalf("unexpected program %d in output", p.ID)
		}
	}

	// A second call is served from the cache without touching the catalog.
	if _, err := uc.Filters(t.Context()); err != nil {
		t.Fatalf("Filters() second call error = %v", err)
	}
	if catalog.calls["locations"] != 1 {
		t.Fatalf("locations fetched %d times, want 1", catalog.calls["locations"])
	}
}

func TestData(t *testing.T) {
	t.Run("ClassDayDropsCancelledOccurrences", func(t *testing.T) {
		catalog := &fakeCatalog{classes: []mindbody.Class{
			{ID: 1, IsCanceled: false},
			{ID: 2, IsCanceled: true},
		}}
		uc := newTestUsecase(t, catalog)

		out, err := uc.Data(t.Context(), DataInput{Type: "class", Date: "2025-06-02"})
		if err != nil {
			t.Fatalf("Data() error = %v", err)
		}

		if out.Type != "class" || out.Date != "2025-06-02" {
			t.Fatalf("output header = %+v", out)
		}
		if len(out.Classes) != 1 || out.Classes[0].ID != 1 {
			t.Fatalf("Classes = %+v, want cancelled occurrence dropped", out.Classes)
		}
	})

	t.Run("MissingDateDefaultsToToday", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeCatalog{})

		out, err := uc.Data(t.Context(), DataInput{Type: "class"})
		if err != nil {
			t.Fatalf("Data() error = %v", err)
		}
		if out.Date != "2025-06-01" {
			t.Fatalf("Date = %q, want clock date", out.Date)
		}
	})

	t.Run("AppointmentRequiresSessionType", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeCatalog{})

		if _, err := uc.Data(t.Context(), DataInput{Type: "appointment"}); err == nil {
			t.Fatal("Data() error = nil, want session_type_id validation error")
		}
	})

	t.Run("AppointmentDayExpandsSlots", func(t *testing.T) {
		catalog := &fakeCatalog{times: []mindbody.AppointmentTime{
			{StartDateTime: "2025-06-02T09:00:00", StaffID: 4},
		}}
		uc := newTestUsecase(t, catalog)

		out, err := uc.Data(t.Context(), DataInput{Type: "appointment", Date: "2025-06-02", SessionTypeID: 100})
		if err != nil {
			t.Fatalf("Data() error = %v", err)
		}
		if len(out.Slots) != 1 || out.Slots[0].EndDateTime != "2025-06-02T09:30:00" {
			t.Fatalf("Slots = %+v", out.Slots)
		}
	})

	t.Run("UnknownTypeRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeCatalog{})

		if _, err := uc.Data(t.Context(), DataInput{Type: "workshop"}); err == nil {
			t.Fatal("Data() error = nil, want validation error")
		}
	})
}
