package engine

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return e
}

func managedCampaign() domain.Campaign {
	return domain.Campaign{
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
	}
}

func wednesdaySlots() []domain.ScheduleSlot {
	return []domain.ScheduleSlot{{
		DayOfWeek: 2,
		StartTime: domain.NewTimeOfDay(9, 0),
		EndTime:   domain.NewTimeOfDay(21, 0),
	}}
}

// Wed 2024-01-10 22:30, outside the 09:00-21:00 slot.
var wedLate = time.Date(2024, 1, 10, 22, 30, 0, 0, time.UTC)

func TestScenarioScheduleOutside(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true

	res := e.Evaluate(c, wednesdaySlots(), wedLate)
	if res.TargetStatus != domain.StatusPaused || res.TriggeredRule != domain.RuleSchedule {
		t.Fatalf("expected (paused, schedule), got (%s, %s)", res.TargetStatus, res.TriggeredRule)
	}
}

func TestScenarioLowStock(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	left, minDays := 3, 5
	c.StockDaysLeft, c.StockDaysMin = &left, &minDays

	res := e.Evaluate(c, nil, wedLate)
	if res.TargetStatus != domain.StatusPaused || res.TriggeredRule != domain.RuleLowStock {
		t.Fatalf("expected (paused, low_stock), got (%s, %s)", res.TargetStatus, res.TriggeredRule)
	}
}

func TestScenarioBudgetEquality(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	limit := decimal.NewFromInt(1000)
	c.BudgetLimit = &limit
	c.SpendToday = decimal.NewFromInt(1000)

	res := e.Evaluate(c, nil, wedLate)
	if res.TargetStatus != domain.StatusPaused || res.TriggeredRule != domain.RuleBudgetExceeded {
		t.Fatalf("expected (paused, budget_exceeded), got (%s, %s)", res.TargetStatus, res.TriggeredRule)
	}
}

// Schedule (priority 2) must win over budget (priority 4) when both are
// violated.
func TestScenarioScheduleWinsOverBudget(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true
	limit := decimal.NewFromInt(1000)
	c.BudgetLimit = &limit
	c.SpendToday = decimal.NewFromInt(1500)

	res := e.Evaluate(c, wednesdaySlots(), wedLate)
	if res.TriggeredRule != domain.RuleSchedule {
		t.Fatalf("expected schedule to win, got %s", res.TriggeredRule)
	}
	if res.TargetStatus != domain.StatusPaused {
		t.Fatalf("expected paused, got %s", res.TargetStatus)
	}
}

func TestScenarioNoRestrictions(t *testing.T) {
	e := newEngine(t)

	res := e.Evaluate(managedCampaign(), nil, wedLate)
	if res.TargetStatus != domain.StatusActive {
		t.Fatalf("expected active, got %s", res.TargetStatus)
	}
	if res.TriggeredRule != "" || res.Details != "" {
		t.Fatalf("expected no rule and no details, got (%s, %q)", res.TriggeredRule, res.Details)
	}
}

func TestScenarioSlotBoundary(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true

	for _, at := range []time.Time{
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC),
	} {
		res := e.Evaluate(c, wednesdaySlots(), at)
		if res.TriggeredRule == domain.RuleSchedule {
			t.Errorf("boundary %v must not fire the schedule rule", at)
		}
	}
}

// Management-disabled wins regardless of every other violated constraint and
// keeps the previous target status.
func TestDisabledManagementWinsAndKeepsTarget(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.IsManaged = false
	c.TargetStatus = domain.StatusPaused
	c.ScheduleEnabled = true
	limit := decimal.NewFromInt(10)
	c.BudgetLimit = &limit
	c.SpendToday = decimal.NewFromInt(100)

	res := e.Evaluate(c, wednesdaySlots(), wedLate)
	if res.TriggeredRule != domain.RuleDisabledManagement {
		t.Fatalf("expected disabled_management, got %s", res.TriggeredRule)
	}
	if res.TargetStatus != domain.StatusPaused {
		t.Fatalf("expected previous target to be kept, got %s", res.TargetStatus)
	}

	// unset target defaults to active
	c.TargetStatus = ""
	res = e.Evaluate(c, nil, wedLate)
	if res.TargetStatus != domain.StatusActive {
		t.Fatalf("expected default active, got %s", res.TargetStatus)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true

	first := e.Evaluate(c, wednesdaySlots(), wedLate)
	second := e.Evaluate(c, wednesdaySlots(), wedLate)
	if first != second {
		t.Fatalf("identical inputs must yield identical outputs: %+v vs %+v", first, second)
	}
}

func TestEvaluateAndLogMutatesUnlessDryRun(t *testing.T) {
	e := newEngine(t)

	c := managedCampaign()
	c.ScheduleEnabled = true
	res, entry := e.EvaluateAndLog(&c, wednesdaySlots(), wedLate, false)
	if c.TargetStatus != domain.StatusPaused {
		t.Fatalf("expected campaign target mutated to paused, got %s", c.TargetStatus)
	}
	if entry.PreviousTarget != domain.StatusActive || entry.NewTarget != domain.StatusPaused {
		t.Fatalf("unexpected log transition %s -> %s", entry.PreviousTarget, entry.NewTarget)
	}
	if entry.TriggeredRule != res.TriggeredRule {
		t.Fatalf("log rule %s does not match result %s", entry.TriggeredRule, res.TriggeredRule)
	}

	dry := managedCampaign()
	dry.ScheduleEnabled = true
	_, entry = e.EvaluateAndLog(&dry, wednesdaySlots(), wedLate, true)
	if dry.TargetStatus != domain.StatusActive {
		t.Fatalf("dry run must not mutate the campaign, got %s", dry.TargetStatus)
	}
	// the log is still produced on a dry run
	if entry.NewTarget != domain.StatusPaused {
		t.Fatalf("dry run log must record the computed target, got %s", entry.NewTarget)
	}
}

func TestContextSnapshot(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true
	limit := decimal.NewFromInt(500)
	c.BudgetLimit = &limit
	c.SpendToday = decimal.NewFromInt(120)

	// seven slots: the snapshot embeds only the first five
	var slots []domain.ScheduleSlot
	for day := 0; day < 7; day++ {
		slots = append(slots, domain.ScheduleSlot{
			DayOfWeek: day,
			StartTime: domain.NewTimeOfDay(9, 0),
			EndTime:   domain.NewTimeOfDay(21, 0),
		})
	}

	_, entry := e.EvaluateAndLog(&c, slots, wedLate, true)
	ctx := entry.Context

	if ctx.CurrentStatus != domain.StatusActive || !ctx.IsManaged || !ctx.ScheduleEnabled {
		t.Error("snapshot does not reflect campaign fields")
	}
	if ctx.BudgetLimit == nil || *ctx.BudgetLimit != "500" {
		t.Errorf("expected budget_limit \"500\", got %v", ctx.BudgetLimit)
	}
	if ctx.SpendToday != "120" {
		t.Errorf("expected spend_today \"120\", got %q", ctx.SpendToday)
	}
	if ctx.CurrentWeekday != 2 {
		t.Errorf("expected weekday 2, got %d", ctx.CurrentWeekday)
	}
	if ctx.SchedulesCount != 7 || len(ctx.Schedules) != 5 {
		t.Errorf("expected 7 slots counted and 5 rendered, got %d/%d", ctx.SchedulesCount, len(ctx.Schedules))
	}
	if ctx.Schedules[0].Start != "09:00:00" || ctx.Schedules[0].End != "21:00:00" {
		t.Errorf("unexpected slot rendering: %+v", ctx.Schedules[0])
	}
	if ctx.EngineVersion != Version {
		t.Errorf("expected engine version %s, got %s", Version, ctx.EngineVersion)
	}
}

// Identical inputs must produce byte-identical snapshots.
func TestContextSnapshotDeterministic(t *testing.T) {
	e := newEngine(t)
	c := managedCampaign()
	c.ScheduleEnabled = true
	slots := wednesdaySlots()

	c1 := c
	_, first := e.EvaluateAndLog(&c1, slots, wedLate, true)
	c2 := c
	_, second := e.EvaluateAndLog(&c2, slots, wedLate, true)

	a, err := json.Marshal(first.Context)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	b, err := json.Marshal(second.Context)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("snapshots differ:\n%s\n%s", a, b)
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	e := newEngine(t)
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			c := managedCampaign()
			c.ScheduleEnabled = true
			for j := 0; j < 100; j++ {
				res := e.Evaluate(c, wednesdaySlots(), wedLate)
				if res.TriggeredRule != domain.RuleSchedule {
					t.Errorf("unexpected rule %s", res.TriggeredRule)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
