// Package report renders run output: the per-post CSV and the JSON
// summary envelope.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"igpulse/models"
	"igpulse/pkg/storage"
)

// Columns is the CSV column layout. Order and names are part of the
// output contract; downstream consumers read these by header.
var Columns = []string{
	"id",
	"shortcode",
	"timestamp",
	"likes",
	"comments_count",
	"shares",
	"saves",
	"caption",
	"hashtags",
	"mood",
	"comment_tone",
	"video_duration",
	"hook_ratio_first3s",
	"location",
	"music_title",
}

// WriteCSV renders one row per annotated post and saves the file at path.
func WriteCSV(path string, batch []models.AnnotatedPost, store *storage.Storage) error {
	data, err := RenderCSV(batch)
	if err != nil {
		return err
	}
	if err := store.SaveFile(path, data); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

// RenderCSV produces the CSV payload for a batch, header included.
func RenderCSV(batch []models.AnnotatedPost) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, ap := range batch {
		if err := w.Write(csvRow(ap)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(ap models.AnnotatedPost) []string {
	p, a := ap.Post, ap.Annotation
	return []string{
		p.ID,
		p.Shortcode,
		p.Timestamp,
		strconv.Itoa(p.Likes),
		strconv.Itoa(p.CommentsCount),
		optionalInt(p.Shares),
		optionalInt(p.Saves),
		p.Caption,
		strings.Join(p.Hashtags, ","),
		a.Mood,
		toneCell(a.CommentTone),
		optionalFloat(a.VideoDuration),
		optionalFloat(a.HookRatio),
		p.Location,
		p.MusicTitle,
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// toneCell serializes the tone mapping as JSON. encoding/json sorts map
// keys, so the cell is deterministic for a given mapping.
func toneCell(tone map[string]int) string {
	if len(tone) == 0 {
		return "{}"
	}
	data, err := json.Marshal(tone)
	if err != nil {
		return "{}"
	}
	return string(data)
}
