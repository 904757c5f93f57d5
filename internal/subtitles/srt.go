package subtitles

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// Negative values clamp to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	totalMillis %= 3_600_000
	minutes := totalMillis / 60_000
	totalMillis %= 60_000
	secs := totalMillis / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseTimestamp converts an SRT timestamp back to seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	main, millisPart, ok := strings.Cut(value, ",")
	if !ok {
		// Some writers use a period separator.
		main, millisPart, ok = strings.Cut(value, ".")
		if !ok {
			return 0, fmt.Errorf("parse timestamp %q: missing millisecond separator", value)
		}
	}
	fields := strings.Split(main, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("parse timestamp %q: expected HH:MM:SS", value)
	}
	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: hours: %w", value, err)
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: minutes: %w", value, err)
	}
	secs, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: seconds: %w", value, err)
	}
	millis, err := strconv.Atoi(millisPart)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: milliseconds: %w", value, err)
	}
	return float64(hours)*3600 + float64(minutes)*60 + float64(secs) + float64(millis)/1000, nil
}

// WriteSRT serializes cues to path in SRT format, creating missing parent
// directories and overwriting any existing file.
func WriteSRT(path string, cues []Cue) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("write srt: destination path required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write srt: create directory: %w", err)
		}
	}

	var builder strings.Builder
	for _, cue := range cues {
		builder.WriteString(strconv.Itoa(cue.Index))
		builder.WriteString("\n")
		builder.WriteString(FormatTimestamp(cue.Start))
		builder.WriteString(" --> ")
		builder.WriteString(FormatTimestamp(cue.End))
		builder.WriteString("\n")
		builder.WriteString(cue.Text)
		builder.WriteString("\n\n")
	}

	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// ReadSRT parses an SRT file back into cues. Used by the re-alignment pass,
// which regenerates cue text against a corrected script while keeping the
// original timing.
func ReadSRT(path string) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	defer file.Close()

	var (
		cues    []Cue
		current *Cue
		textBuf []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(strings.Join(textBuf, " "))
		cues = append(cues, *current)
		current = nil
		textBuf = nil
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case current == nil:
			index, convErr := strconv.Atoi(line)
			if convErr != nil {
				// Tolerate stray text between records.
				continue
			}
			current = &Cue{Index: index}
		case strings.Contains(line, "-->"):
			startRaw, endRaw, _ := strings.Cut(line, "-->")
			start, parseErr := ParseTimestamp(startRaw)
			if parseErr != nil {
				return nil, parseErr
			}
			end, parseErr := ParseTimestamp(endRaw)
			if parseErr != nil {
				return nil, parseErr
			}
			current.Start = start
			current.End = end
		default:
			textBuf = append(textBuf, line)
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read srt: scan: %w", err)
	}
	return Reindex(cues), nil
}
