package backend

import (
	"context"
	"sync"
	"testing"
	"time"

	"gioui.org/f32"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
	"github.com/google/go-cmp/cmp"
)

func receive(t *testing.T, ch <-chan picker.ViewModel) picker.ViewModel {
	t.Helper()
	select {
	case vm, ok := <-ch:
		if !ok {
			t.Fatalf("expected a snapshot, stream was closed")
		}
		return vm
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a snapshot")
	}
	return picker.ViewModel{}
}

func TestStoreInitialSnapshot(t *testing.T) {
	s := NewStore(picker.DefaultState())
	if diff := cmp.Diff(picker.Project(picker.DefaultState()), s.Current()); diff != "" {
		t.Errorf("initial view mismatch (-want +got):\n%s", diff)
	}
	if s.State() != picker.DefaultState() {
		t.Errorf("expected default state, got %+v", s.State())
	}
}

func TestStoreAcceptSequence(t *testing.T) {
	s := NewStore(picker.DefaultState())
	center := f32.Pt(100, 100)
	s.Accept(picker.WheelTouch{Center: center, Size: 200, Touch: f32.Pt(200, 100)})
	s.Accept(picker.SaturationSet{Value: 0.9})
	want := picker.State{Hue: 0, Saturation: 0.9, Luminance: 0}
	if got := s.State(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if diff := cmp.Diff(picker.Project(want), s.Current()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreStream(t *testing.T) {
	s := NewStore(picker.DefaultState())
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Stream(ctx)
	if got := receive(t, ch); got.Hue != 0.5 {
		t.Errorf("expected the current snapshot first, got hue %v", got.Hue)
	}
	s.Accept(picker.HueSet{Value: 0.25})
	if got := receive(t, ch); got.Hue != 0.25 {
		t.Errorf("expected updated hue 0.25, got %v", got.Hue)
	}
	cancel()
	for range ch {
	}
}

func TestStoreStreamLateSubscriber(t *testing.T) {
	s := NewStore(picker.DefaultState())
	s.Accept(picker.LuminanceSet{Value: 0.1})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if got := receive(t, s.Stream(ctx)); got.Luminance != 0.1 {
		t.Errorf("late subscriber expected luminance 0.1, got %v", got.Luminance)
	}
}

func TestStoreStreamSkipsToLatest(t *testing.T) {
	s := NewStore(picker.DefaultState())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := s.Stream(ctx)
	for _, v := range []float32{0.1, 0.2, 0.3} {
		s.Accept(picker.HueSet{Value: v})
	}
	if got := receive(t, ch); got.Hue != 0.3 {
		t.Errorf("expected slow reader to see the latest hue 0.3, got %v", got.Hue)
	}
	select {
	case vm := <-ch:
		t.Errorf("expected no further snapshot, got %+v", vm)
	default:
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore(picker.DefaultState())
	var seen []float32
	cancel := s.Subscribe(func(vm picker.ViewModel) {
		seen = append(seen, vm.Saturation)
	})
	s.Accept(picker.SaturationSet{Value: 0.1})
	s.Accept(picker.SaturationSet{Value: 0.2})
	cancel()
	cancel()
	s.Accept(picker.SaturationSet{Value: 0.3})
	if diff := cmp.Diff([]float32{0.5, 0.1, 0.2}, seen); diff != "" {
		t.Errorf("observed saturations mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreConcurrentAccept(t *testing.T) {
	s := NewStore(picker.DefaultState())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := s.Stream(ctx)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Accept(picker.HueSet{Value: float32(i) / 8})
			}
		}(i)
	}
	wg.Wait()
	final := s.Current()
	var last picker.ViewModel
	for {
		select {
		case last = <-ch:
			continue
		default:
		}
		break
	}
	if diff := cmp.Diff(final, last); diff != "" {
		t.Errorf("stream did not settle on the final snapshot (-want +got):\n%s", diff)
	}
}
