package models

import (
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestObservationValidate(t *testing.T) {
	valid := Observation{Article: "A", Views: 10, Date: date(1)}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid observation, got %v", err)
	}

	tests := []struct {
		name string
		o    Observation
	}{
		{"empty article", Observation{Views: 10, Date: date(1)}},
		{"negative views", Observation{Article: "A", Views: -1, Date: date(1)}},
		{"zero date", Observation{Article: "A", Views: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.o.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDailyTopValidate(t *testing.T) {
	valid := DailyTop{Project: "en.wikipedia", Access: "all-access", Date: date(1)}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid daily top, got %v", err)
	}

	invalid := DailyTop{Access: "all-access", Date: date(1)}
	if err := invalid.Validate(); err == nil {
		t.Error("Expected validation error for missing project")
	}
}

func TestTableArticlesFirstSeenOrder(t *testing.T) {
	table := Table{
		{Article: "B", Views: 1, Date: date(1)},
		{Article: "A", Views: 2, Date: date(1)},
		{Article: "B", Views: 3, Date: date(2)},
	}

	articles := table.Articles()
	if len(articles) != 2 || articles[0] != "B" || articles[1] != "A" {
		t.Errorf("Expected [B A] in first-seen order, got %v", articles)
	}
}

func TestTableDateBounds(t *testing.T) {
	table := Table{
		{Article: "A", Views: 1, Date: date(3)},
		{Article: "A", Views: 2, Date: date(1)},
		{Article: "A", Views: 3, Date: date(2)},
	}

	if !table.MinDate().Equal(date(1)) {
		t.Errorf("Expected min date %v, got %v", date(1), table.MinDate())
	}
	if !table.MaxDate().Equal(date(3)) {
		t.Errorf("Expected max date %v, got %v", date(3), table.MaxDate())
	}
}

func TestTableMaxViews(t *testing.T) {
	table := Table{
		{Article: "A", Views: 10, Date: date(1)},
		{Article: "B", Views: 500, Date: date(1)},
		{Article: "A", Views: 50, Date: date(2)},
	}

	if table.MaxViews() != 500 {
		t.Errorf("Expected max views 500, got %d", table.MaxViews())
	}
}

func TestEmptyTable(t *testing.T) {
	var table Table
	if got := table.Articles(); len(got) != 0 {
		t.Errorf("Expected no articles, got %v", got)
	}
	if !table.MinDate().IsZero() || !table.MaxDate().IsZero() {
		t.Error("Expected zero dates for empty table")
	}
	if table.MaxViews() != 0 {
		t.Errorf("Expected zero max views, got %d", table.MaxViews())
	}
}
