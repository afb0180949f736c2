package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/foodinme/internal/model"
)

func openTemp(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache", "days.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sampleDay(path string, day int) model.DayStats {
	return model.DayStats{
		Date:     model.NewDate(2024, time.September, day),
		FilePath: path,
		Entries:  3,
		Total:    model.Nutrition{Calories: 300, Carbs: 30, Fats: 10, Proteins: 20},
		Items: []model.ItemTotal{
			{Name: "oats", Nutrition: model.Nutrition{Calories: 200, Carbs: 25, Fats: 5, Proteins: 10}},
			{Name: "egg", Nutrition: model.Nutrition{Calories: 100, Carbs: 5, Fats: 5, Proteins: 10}},
		},
	}
}

func TestSaveAndLoadDays(t *testing.T) {
	c := openTemp(t)

	if err := c.SaveDay(sampleDay("/u/9-5-2024.csv", 5), 111, 42); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	days, err := c.LoadAllDays()
	if err != nil {
		t.Fatalf("LoadAllDays: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1", len(days))
	}
	got := days[0]
	if got.Date != model.NewDate(2024, time.September, 5) {
		t.Errorf("Date = %v", got.Date)
	}
	if got.Entries != 3 || got.Total.Calories != 300 {
		t.Errorf("day = %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0].Name != "oats" || got.Items[1].Name != "egg" {
		t.Errorf("Items = %+v, want oats then egg", got.Items)
	}

	tracked, err := c.GetTrackedFiles()
	if err != nil {
		t.Fatal(err)
	}
	if fi := tracked["/u/9-5-2024.csv"]; fi.MtimeNs != 111 || fi.SizeBytes != 42 {
		t.Errorf("tracked = %+v", fi)
	}
}

func TestSaveDay_ReplacesItems(t *testing.T) {
	c := openTemp(t)
	d := sampleDay("/u/9-5-2024.csv", 5)
	if err := c.SaveDay(d, 1, 1); err != nil {
		t.Fatal(err)
	}

	d.Items = d.Items[:1]
	d.Entries = 1
	if err := c.SaveDay(d, 2, 2); err != nil {
		t.Fatal(err)
	}

	days, err := c.LoadAllDays()
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 || len(days[0].Items) != 1 || days[0].Entries != 1 {
		t.Fatalf("days = %+v", days)
	}
}

func TestDeleteDay(t *testing.T) {
	c := openTemp(t)
	for i, p := range []string{"/u/9-5-2024.csv", "/u/9-6-2024.csv"} {
		if err := c.SaveDay(sampleDay(p, 5+i), 1, 1); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.DeleteDay("/u/9-5-2024.csv"); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteFileTracker("/u/9-5-2024.csv"); err != nil {
		t.Fatal(err)
	}

	n, err := c.DayCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("DayCount = %d, want 1", n)
	}
	tracked, _ := c.GetTrackedFiles()
	if _, ok := tracked["/u/9-5-2024.csv"]; ok {
		t.Error("tracker entry not deleted")
	}
	days, _ := c.LoadAllDays()
	if len(days) != 1 || len(days[0].Items) != 2 {
		t.Fatalf("remaining days = %+v", days)
	}
}
