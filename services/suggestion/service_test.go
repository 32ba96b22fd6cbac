package suggestion

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"bookwell/models"
	"bookwell/services/availability"
)

// Saturday 2024-06-01, noon UTC.
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeConsumerSource struct{ slots []models.ConsumerSlot }

func (f fakeConsumerSource) GetAvailability(context.Context, string) ([]models.ConsumerSlot, error) {
	return f.slots, nil
}

type fakeProviderSource struct{ rows []models.ScheduleDay }

func (f fakeProviderSource) GetSchedule(context.Context, string) ([]models.ScheduleDay, error) {
	return f.rows, nil
}

type fakeServiceSource struct{ svc models.Service }

func (f fakeServiceSource) GetServiceByID(context.Context, string) (*models.Service, error) {
	s := f.svc
	return &s, nil
}

type fakeCommitmentSource struct{ active []models.Commitment }

func (f fakeCommitmentSource) FindActiveForConsumerOrService(context.Context, string, string) ([]models.Commitment, error) {
	return f.active, nil
}

func newTestService(svc models.Service, consumer []models.ConsumerSlot, schedule []models.ScheduleDay, active []models.Commitment, sug Suggester) *DefaultSuggestionService {
	return &DefaultSuggestionService{
		ConsumerRepo:   fakeConsumerSource{slots: consumer},
		ProviderRepo:   fakeProviderSource{rows: schedule},
		CatalogRepo:    fakeServiceSource{svc: svc},
		CommitmentRepo: fakeCommitmentSource{active: active},
		Suggester:      sug,
		Clock:          func() time.Time { return testNow },
	}
}

func TestGenerateSuggestionsScenarioA(t *testing.T) {
	// Provider Mon 09:00-17:00, mask Mon 09:00-12:00, consumer Mon
	// 10:00-11:00, targetCount 1: exactly one Monday 10:00 candidate.
	svc := models.Service{
		ID: "s1", ProviderID: "p1", DurationMinutes: 30, Active: true,
		SlotMask: []models.ConsumerSlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}},
	}
	schedule := []models.ScheduleDay{{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00"}}
	consumer := []models.ConsumerSlot{{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"}}

	s := newTestService(svc, consumer, schedule, nil, DeterministicSuggester{})
	got, err := s.GenerateSuggestions(context.Background(), "c1", "s1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("candidates = %d, want 1: %+v", len(got), got)
	}
	c := got[0]
	if c.DayOfWeek != 1 || c.StartTime != "10:00" || c.EndTime != "10:30" {
		t.Errorf("candidate = %+v, want Monday 10:00-10:30", c)
	}
}

func TestGenerateSuggestionsScenarioBNoSharedDays(t *testing.T) {
	svc := models.Service{ID: "s1", ProviderID: "p1", DurationMinutes: 60, Active: true}
	schedule := []models.ScheduleDay{{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00"}}
	consumer := []models.ConsumerSlot{{DayOfWeek: 4, StartTime: "09:00", EndTime: "17:00"}}

	s := newTestService(svc, consumer, schedule, nil, DeterministicSuggester{})
	got, err := s.GenerateSuggestions(context.Background(), "c1", "s1", 5)
	if err != nil {
		t.Fatalf("no shared days must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("candidates = %+v, want empty list", got)
	}
}

func TestGenerateSuggestionsScenarioCExcludesBookedSlot(t *testing.T) {
	svc := models.Service{ID: "s1", ProviderID: "p1", DurationMinutes: 30, Active: true}
	schedule := []models.ScheduleDay{{DayOfWeek: 1, IsAvailable: true, StartTime: "10:00", EndTime: "10:30"}}
	consumer := []models.ConsumerSlot{{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30"}}
	active := []models.Commitment{{
		ConsumerID: "c1", ProviderID: "p1", ServiceID: "s1",
		Date: "2024-06-03", Start: 600, End: 630,
		Status: models.CommitmentConfirmed,
	}}

	s := newTestService(svc, consumer, schedule, active, DeterministicSuggester{})
	got, err := s.GenerateSuggestions(context.Background(), "c1", "s1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range got {
		if c.Date == "2024-06-03" && c.StartTime == "10:00" {
			t.Errorf("booked slot was suggested: %+v", c)
		}
	}
	// The three later Mondays are still free.
	if len(got) != 3 {
		t.Errorf("candidates = %d, want 3", len(got))
	}
}

func TestGenerateSuggestionsClampsTargetCount(t *testing.T) {
	svc := models.Service{ID: "s1", ProviderID: "p1", DurationMinutes: 30, Active: true}
	schedule := []models.ScheduleDay{{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00"}}
	consumer := []models.ConsumerSlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}}

	s := newTestService(svc, consumer, schedule, nil, DeterministicSuggester{})
	got, err := s.GenerateSuggestions(context.Background(), "c1", "s1", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > 12 {
		t.Errorf("candidates = %d, want at most 12", len(got))
	}
}

func TestGenerateSuggestionsInactiveService(t *testing.T) {
	svc := models.Service{ID: "s1", ProviderID: "p1", DurationMinutes: 30, Active: false}
	s := newTestService(svc, nil, nil, nil, DeterministicSuggester{})

	if _, err := s.GenerateSuggestions(context.Background(), "c1", "s1", 3); err == nil {
		t.Error("inactive service should be rejected")
	}
}

// failingGenerator simulates a transport failure.
type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

// cannedGenerator returns a fixed reply.
type cannedGenerator struct{ reply string }

func (g cannedGenerator) GenerateContent(context.Context, string) (string, error) {
	return g.reply, nil
}

func suggestionFixtureInput() SuggestionInput {
	return SuggestionInput{
		ConsumerID: "c1",
		Service:    models.Service{ID: "s1", ProviderID: "p1", DurationMinutes: 30, Active: true},
		Windows: availability.Set{
			time.Monday: {{DayOfWeek: 1, Start: 600, End: 660}},
		},
		TargetCount: 2,
		Now:         testNow,
	}
}

func TestGenerativeSuggesterScenarioDMalformedJSONFallsBack(t *testing.T) {
	in := suggestionFixtureInput()
	fallback := DeterministicSuggester{}

	want, err := fallback.Suggest(context.Background(), in)
	if err != nil {
		t.Fatalf("fallback errored: %v", err)
	}

	g := &GenerativeSuggester{Client: cannedGenerator{reply: "this is not JSON {"}, Fallback: fallback}
	got, err := g.Suggest(context.Background(), in)
	if err != nil {
		t.Fatalf("malformed reply must not surface an error, got %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback output mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestGenerativeSuggesterTransportFailureFallsBack(t *testing.T) {
	in := suggestionFixtureInput()
	fallback := DeterministicSuggester{}

	want, _ := fallback.Suggest(context.Background(), in)
	g := &GenerativeSuggester{Client: failingGenerator{}, Fallback: fallback}
	got, err := g.Suggest(context.Background(), in)
	if err != nil {
		t.Fatalf("transport failure must not surface an error, got %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback output mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestGenerativeSuggesterMapsAndRevalidates(t *testing.T) {
	in := suggestionFixtureInput()
	in.Active = []models.Commitment{{
		ConsumerID: "c1", ServiceID: "s1",
		Date: "2024-06-03", Start: 600, End: 630,
		Status: models.CommitmentConfirmed,
	}}

	// First suggestion collides with the active commitment; second is fine;
	// third has a malformed time and is dropped at the shape check.
	reply := `{"suggestions":[
		{"date":"2024-06-03","time":"10:00","dayOfWeek":1,"reasoning":"early slot"},
		{"date":"2024-06-10","time":"10:00","dayOfWeek":1,"reasoning":"next week"},
		{"date":"2024-06-17","time":"ten","dayOfWeek":1,"reasoning":"bad"}
	],"reasoning":"spread across weeks","confidence":"high"}`

	g := &GenerativeSuggester{Client: cannedGenerator{reply: reply}, Fallback: DeterministicSuggester{}}
	got, err := g.Suggest(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("candidates = %d, want 1: %+v", len(got), got)
	}
	c := got[0]
	if c.Date != "2024-06-10" || c.StartTime != "10:00" || c.EndTime != "10:30" {
		t.Errorf("candidate = %+v, want 2024-06-10 10:00-10:30", c)
	}
	if c.Source != models.CandidateSourceAIEnhanced {
		t.Errorf("source = %s, want ai-enhanced", c.Source)
	}
	if c.DayOfWeek != 1 {
		t.Errorf("dayOfWeek = %d, want 1 (recomputed from the date)", c.DayOfWeek)
	}
}

func TestGenerativeSuggesterStripsCodeFences(t *testing.T) {
	in := suggestionFixtureInput()
	reply := "```json\n{\"suggestions\":[{\"date\":\"2024-06-10\",\"time\":\"10:00\",\"dayOfWeek\":1,\"reasoning\":\"ok\"}],\"reasoning\":\"\",\"confidence\":\"high\"}\n```"

	g := &GenerativeSuggester{Client: cannedGenerator{reply: reply}, Fallback: DeterministicSuggester{}}
	got, err := g.Suggest(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Source != models.CandidateSourceAIEnhanced {
		t.Errorf("fenced JSON reply should still be used, got %+v", got)
	}
}
