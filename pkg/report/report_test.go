package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"igpulse/models"
	"igpulse/pkg/storage"
)

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }
func strPtr(s string) *string   { return &s }

func sampleBatch() []models.AnnotatedPost {
	return []models.AnnotatedPost{
		{
			Post: models.PostRecord{
				ID:            "1",
				Shortcode:     "ABC123",
				Timestamp:     "2025-09-21T10:00:00",
				Likes:         120,
				CommentsCount: 10,
				Shares:        intPtr(5),
				Saves:         intPtr(15),
				Caption:       "Feeling pumped! #motivation",
				Hashtags:      []string{"motivation", "workout"},
				Location:      "Gym",
				MusicTitle:    "Eye of the Tiger",
			},
			Annotation: models.Annotation{
				Mood:          "motivation",
				CommentTone:   map[string]int{"POSITIVE": 2},
				VideoDuration: f64Ptr(10),
				HookRatio:     f64Ptr(0.3),
			},
		},
		{
			Post: models.PostRecord{
				ID:            "2",
				Shortcode:     "DEF456",
				Timestamp:     "2025-09-20T15:30:00",
				Likes:         150,
				CommentsCount: 20,
				Caption:       "caption with, comma and \"quotes\"",
				Hashtags:      []string{},
			},
		},
	}
}

func TestRenderCSV_RoundTrip(t *testing.T) {
	batch := sampleBatch()

	data, err := RenderCSV(batch)
	if err != nil {
		t.Fatalf("RenderCSV() error = %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}

	if len(rows) != len(batch)+1 {
		t.Fatalf("row count = %d, want %d", len(rows), len(batch)+1)
	}
	if !reflect.DeepEqual(rows[0], Columns) {
		t.Errorf("header = %v, want %v", rows[0], Columns)
	}
	for i, row := range rows[1:] {
		if len(row) != len(Columns) {
			t.Errorf("row %d has %d columns, want %d", i, len(row), len(Columns))
		}
	}

	// Spot-check formatting of the first row.
	first := rows[1]
	if first[0] != "1" || first[3] != "120" || first[5] != "5" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[8] != "motivation,workout" {
		t.Errorf("hashtags cell = %q, want comma-joined", first[8])
	}
	if first[10] != `{"POSITIVE":2}` {
		t.Errorf("comment_tone cell = %q", first[10])
	}
	if first[12] != "0.3" {
		t.Errorf("hook_ratio cell = %q, want 0.3", first[12])
	}

	// Absent optionals render as empty cells.
	second := rows[2]
	if second[5] != "" || second[6] != "" || second[11] != "" || second[12] != "" {
		t.Errorf("nil optionals not empty: %v", second)
	}
	if second[10] != "{}" {
		t.Errorf("empty tone cell = %q, want {}", second[10])
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	store := &storage.Storage{}

	if err := WriteCSV(path, sampleBatch(), store); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !store.HasFile(path) {
		t.Error("WriteCSV() did not create the file")
	}

	data, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "id,shortcode,timestamp") {
		t.Errorf("unexpected CSV prefix: %q", string(data[:40]))
	}
}

func TestRenderSummary_Success(t *testing.T) {
	report := models.AggregateReport{
		MostCommonMood:  strPtr("motivation"),
		TopHashtags:     []string{"motivation", "life"},
		AverageLikes:    140,
		AverageComments: 12.5,
	}

	data, err := RenderSummary(report)
	if err != nil {
		t.Fatalf("RenderSummary() error = %v", err)
	}

	want := `{"status":"success","data":{"most_common_mood":"motivation","top_hashtags":["motivation","life"],"average_likes":140,"average_comments":12.5}}`
	if string(data) != want {
		t.Errorf("RenderSummary() = %s, want %s", data, want)
	}
}

func TestRenderSummary_NoData(t *testing.T) {
	data, err := RenderSummary(models.AggregateReport{NoData: true})
	if err != nil {
		t.Fatalf("RenderSummary() error = %v", err)
	}

	want := `{"message":"No posts found or account is private/non-existent."}`
	if string(data) != want {
		t.Errorf("RenderSummary() = %s, want %s", data, want)
	}
}
