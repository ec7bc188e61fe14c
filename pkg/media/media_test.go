package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"
)

type fakeProber struct {
	duration float64
	err      error
}

func (f *fakeProber) ProbeDuration(ctx context.Context, videoURL string) (float64, error) {
	return f.duration, f.err
}

func TestEstimate_FullHook(t *testing.T) {
	e := NewEstimator(&fakeProber{duration: 3.0})

	duration, hook := e.Estimate(context.Background(), true, "https://example.com/v.mp4")
	if duration == nil || *duration != 3.0 {
		t.Fatalf("duration = %v, want 3.0", duration)
	}
	if hook == nil || *hook != 1.0 {
		t.Errorf("hook = %v, want 1.0", hook)
	}
}

func TestEstimate_PartialHook(t *testing.T) {
	e := NewEstimator(&fakeProber{duration: 10.0})

	_, hook := e.Estimate(context.Background(), true, "https://example.com/v.mp4")
	if hook == nil || *hook != 0.3 {
		t.Errorf("hook = %v, want 0.3", hook)
	}
}

func TestEstimate_ShortClipCapsAtOne(t *testing.T) {
	e := NewEstimator(&fakeProber{duration: 1.5})

	_, hook := e.Estimate(context.Background(), true, "https://example.com/v.mp4")
	if hook == nil || *hook != 1.0 {
		t.Errorf("hook = %v, want 1.0 for clips shorter than the window", hook)
	}
}

func TestEstimate_ZeroDuration(t *testing.T) {
	e := NewEstimator(&fakeProber{duration: 0})

	duration, hook := e.Estimate(context.Background(), true, "https://example.com/v.mp4")
	if duration != nil || hook != nil {
		t.Errorf("Estimate() = (%v, %v), want (nil, nil) for zero duration", duration, hook)
	}
}

func TestEstimate_ProbeFailure(t *testing.T) {
	e := NewEstimator(&fakeProber{err: errors.New("network down")})

	duration, hook := e.Estimate(context.Background(), true, "https://example.com/v.mp4")
	if duration != nil || hook != nil {
		t.Errorf("Estimate() = (%v, %v), want (nil, nil) on probe failure", duration, hook)
	}
}

func TestEstimate_NotAVideo(t *testing.T) {
	e := NewEstimator(&fakeProber{duration: 10})

	if d, h := e.Estimate(context.Background(), false, "https://example.com/v.mp4"); d != nil || h != nil {
		t.Errorf("Estimate() = (%v, %v), want (nil, nil) for non-video", d, h)
	}
	if d, h := e.Estimate(context.Background(), true, ""); d != nil || h != nil {
		t.Errorf("Estimate() = (%v, %v), want (nil, nil) for missing URL", d, h)
	}
}

// buildMP4 assembles a minimal MP4 stream with an mvhd declaring the given
// timescale and duration.
func buildMP4(t *testing.T, timescale, duration uint32) []byte {
	t.Helper()

	var mvhd bytes.Buffer
	mvhd.Write([]byte{0, 0, 0, 0}) // version 0, flags
	binary.Write(&mvhd, binary.BigEndian, uint32(0))
	binary.Write(&mvhd, binary.BigEndian, uint32(0))
	binary.Write(&mvhd, binary.BigEndian, timescale)
	binary.Write(&mvhd, binary.BigEndian, duration)

	var mvhdBox bytes.Buffer
	binary.Write(&mvhdBox, binary.BigEndian, uint32(8+mvhd.Len()))
	mvhdBox.WriteString("mvhd")
	mvhdBox.Write(mvhd.Bytes())

	var moov bytes.Buffer
	binary.Write(&moov, binary.BigEndian, uint32(8+mvhdBox.Len()))
	moov.WriteString("moov")
	moov.Write(mvhdBox.Bytes())

	// ftyp box ahead of moov, as real files have.
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(16))
	out.WriteString("ftyp")
	out.WriteString("isom\x00\x00\x02\x00")
	out.Write(moov.Bytes())
	return out.Bytes()
}

func TestReadMP4Duration(t *testing.T) {
	data := buildMP4(t, 1000, 12500)

	got, err := readMP4Duration(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readMP4Duration() error = %v", err)
	}
	if got != 12.5 {
		t.Errorf("readMP4Duration() = %v, want 12.5", got)
	}
}

func TestReadMP4Duration_NoMoov(t *testing.T) {
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(16))
	out.WriteString("ftyp")
	out.WriteString("isom\x00\x00\x02\x00")

	if _, err := readMP4Duration(bytes.NewReader(out.Bytes())); err == nil {
		t.Error("readMP4Duration() error = nil, want error without moov")
	}
}

func TestReadMP4Duration_ZeroTimescale(t *testing.T) {
	data := buildMP4(t, 0, 1000)

	if _, err := readMP4Duration(bytes.NewReader(data)); err == nil {
		t.Error("readMP4Duration() error = nil, want error for zero timescale")
	}
}
