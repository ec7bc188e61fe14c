package media

import (
	"encoding/binary"
	"fmt"
	"io"
)

// readMP4Duration walks the top-level boxes of an MP4 stream looking for
// moov/mvhd and returns the declared duration in seconds. Only the box
// headers and the mvhd payload are read; media data is skipped.
func readMP4Duration(r io.ReadSeeker) (float64, error) {
	for {
		size, boxType, headerLen, err := readBoxHeader(r)
		if err == io.EOF {
			return 0, fmt.Errorf("no moov box found")
		}
		if err != nil {
			return 0, err
		}

		if boxType == "moov" {
			return findMvhd(r, size-headerLen)
		}

		if _, err := r.Seek(size-headerLen, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("failed to skip %s box: %w", boxType, err)
		}
	}
}

// findMvhd scans the children of a moov box for mvhd and decodes its
// timescale and duration fields.
func findMvhd(r io.ReadSeeker, remaining int64) (float64, error) {
	for remaining > 8 {
		size, boxType, headerLen, err := readBoxHeader(r)
		if err != nil {
			return 0, err
		}

		if boxType == "mvhd" {
			return decodeMvhd(r)
		}

		if _, err := r.Seek(size-headerLen, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("failed to skip %s box: %w", boxType, err)
		}
		remaining -= size
	}
	return 0, fmt.Errorf("no mvhd box found")
}

// decodeMvhd reads the mvhd payload. Version 0 carries 32-bit timestamps
// and duration; version 1 widens them to 64 bits.
func decodeMvhd(r io.Reader) (float64, error) {
	var versionAndFlags [4]byte
	if _, err := io.ReadFull(r, versionAndFlags[:]); err != nil {
		return 0, fmt.Errorf("failed to read mvhd header: %w", err)
	}

	var timescale uint32
	var duration uint64
	switch versionAndFlags[0] {
	case 0:
		var body struct {
			Creation     uint32
			Modification uint32
			Timescale    uint32
			Duration     uint32
		}
		if err := binary.Read(r, binary.BigEndian, &body); err != nil {
			return 0, fmt.Errorf("failed to read mvhd body: %w", err)
		}
		timescale = body.Timescale
		duration = uint64(body.Duration)
	case 1:
		var body struct {
			Creation     uint64
			Modification uint64
			Timescale    uint32
			Duration     uint64
		}
		if err := binary.Read(r, binary.BigEndian, &body); err != nil {
			return 0, fmt.Errorf("failed to read mvhd body: %w", err)
		}
		timescale = body.Timescale
		duration = body.Duration
	default:
		return 0, fmt.Errorf("unsupported mvhd version %d", versionAndFlags[0])
	}

	if timescale == 0 {
		return 0, fmt.Errorf("mvhd timescale is zero")
	}
	return float64(duration) / float64(timescale), nil
}

// readBoxHeader reads one box header and returns the full box size, its
// type, and how many bytes the header consumed.
func readBoxHeader(r io.Reader) (size int64, boxType string, headerLen int64, err error) {
	var header [8]byte
	if _, err = io.ReadFull(r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, "", 0, err
	}

	size = int64(binary.BigEndian.Uint32(header[:4]))
	boxType = string(header[4:8])
	headerLen = 8

	// size == 1 means a 64-bit largesize follows.
	if size == 1 {
		var large [8]byte
		if _, err = io.ReadFull(r, large[:]); err != nil {
			return 0, "", 0, fmt.Errorf("failed to read largesize: %w", err)
		}
		size = int64(binary.BigEndian.Uint64(large[:]))
		headerLen = 16
	}

	if size < headerLen {
		return 0, "", 0, fmt.Errorf("invalid box size %d for %s", size, boxType)
	}
	return size, boxType, headerLen, nil
}
