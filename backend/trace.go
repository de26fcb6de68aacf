package backend

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gioui.org/f32"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
	"github.com/fsnotify/fsnotify"
)

// Trace record kinds. Each record is one CSV line whose first field is the kind:
//
//	hue, v
//	sat, v
//	lum, v
//	touch, center x, center y, size, touch x, touch y
const (
	KindHue        = "hue"
	KindSaturation = "sat"
	KindLuminance  = "lum"
	KindTouch      = "touch"
)

var (
	ErrUnknownEvent = errors.New("unknown event kind")
	ErrBadRecord    = errors.New("malformed event record")
)

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrBadRecord, i+1, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// ParseEvent decodes one trace record.
func ParseEvent(record []string) (picker.Event, error) {
	if len(record) < 1 {
		return nil, fmt.Errorf("%w: empty record", ErrBadRecord)
	}
	kind := strings.TrimSpace(record[0])
	want := 1
	if kind == KindTouch {
		want = 5
	}
	switch kind {
	case KindHue, KindSaturation, KindLuminance, KindTouch:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, kind)
	}
	if len(record)-1 != want {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d", ErrBadRecord, kind, want, len(record)-1)
	}
	v, err := parseFloats(record[1:])
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindHue:
		return picker.HueSet{Value: v[0]}, nil
	case KindSaturation:
		return picker.SaturationSet{Value: v[0]}, nil
	case KindLuminance:
		return picker.LuminanceSet{Value: v[0]}, nil
	default:
		return picker.WheelTouch{
			Center: f32.Pt(v[0], v[1]),
			Size:   v[2],
			Touch:  f32.Pt(v[3], v[4]),
		}, nil
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// FormatEvent encodes ev as a trace record. It returns nil for events it
// does not know.
func FormatEvent(ev picker.Event) []string {
	switch ev := ev.(type) {
	case picker.HueSet:
		return []string{KindHue, formatFloat(ev.Value)}
	case picker.SaturationSet:
		return []string{KindSaturation, formatFloat(ev.Value)}
	case picker.LuminanceSet:
		return []string{KindLuminance, formatFloat(ev.Value)}
	case picker.WheelTouch:
		return []string{
			KindTouch,
			formatFloat(ev.Center.X), formatFloat(ev.Center.Y),
			formatFloat(ev.Size),
			formatFloat(ev.Touch.X), formatFloat(ev.Touch.Y),
		}
	}
	return nil
}

// Trace replays recorded events into a Store.
type Trace struct {
	store   *Store
	watcher *fsnotify.Watcher
}

func NewTrace(store *Store) (*Trace, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating file watcher: %w", err)
	}
	return &Trace{
		store:   store,
		watcher: watcher,
	}, nil
}

func (t *Trace) Close() error {
	return t.watcher.Close()
}

// ReplayFile replays the trace stored at path. See Replay.
func (t *Trace) ReplayFile(ctx context.Context, path string, follow bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed opening trace: %w", err)
	}
	defer f.Close()
	return t.Replay(ctx, f, follow)
}

// stickyReader remembers the first error other than io.EOF returned by r, so
// that it can be told apart from malformed CSV.
type stickyReader struct {
	r   io.Reader
	err error
}

func (s *stickyReader) Read(b []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.r.Read(b)
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	return n, err
}

// Replay applies every event in r to the store, in order, and reports how
// many were applied. Malformed records are logged and skipped, while errors
// reading r end the replay. A final line without a newline is applied unless
// following, where it may still be being written. When follow is
// set and r is a file, Replay waits for the file to be written to after
// reaching its end and only returns once ctx is done, reporting ctx.Err().
func (t *Trace) Replay(ctx context.Context, r io.Reader, follow bool) (applied int, err error) {
	if follow {
		if f, ok := r.(interface{ Name() string }); ok {
			if err := t.watcher.Add(f.Name()); err != nil {
				return 0, fmt.Errorf("failed watching %q: %w", f.Name(), err)
			}
			defer t.watcher.Remove(f.Name())
		} else {
			follow = false
		}
	}
	src := &stickyReader{r: r}
	var input io.Reader = src
	if follow {
		input = NewLineReader(src)
	}
	csvReader := csv.NewReader(input)
	csvReader.TrimLeadingSpace = true
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1
readLoop:
	for {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		rec, err := csvReader.Read()
		if err != nil {
			if src.err != nil {
				return applied, fmt.Errorf("failed reading trace: %w", src.err)
			}
			if !errors.Is(err, io.EOF) {
				log.Printf("skipping unreadable trace record: %v", err)
				continue
			}
			if !follow {
				return applied, nil
			}
			for {
				select {
				case <-ctx.Done():
					return applied, ctx.Err()
				case ev, ok := <-t.watcher.Events:
					if !ok {
						return applied, nil
					}
					if ev.Has(fsnotify.Write) {
						continue readLoop
					}
				case err, ok := <-t.watcher.Errors:
					if !ok {
						return applied, nil
					}
					return applied, fmt.Errorf("failed watching trace: %w", err)
				}
			}
		}
		if src.err != nil {
			return applied, fmt.Errorf("failed reading trace: %w", src.err)
		}
		ev, err := ParseEvent(rec)
		if err != nil {
			line, _ := csvReader.FieldPos(0)
			log.Printf("skipping trace line %d: %v", line, err)
			continue
		}
		t.store.Accept(ev)
		applied++
	}
}
