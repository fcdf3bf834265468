package ecs

import (
	"testing"

	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []trellis.WidgetEvent
	WidgetEventType.Subscribe(world, func(w donburi.World, e trellis.WidgetEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(trellis.WidgetEvent{Type: trellis.WidgetSliderChanged, Name: "volume", Value: 0.25, Norm: 0.25})
	sink.EmitEvent(trellis.WidgetEvent{Type: trellis.WidgetToggled, Name: "mute", Value: 1})

	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %d", len(received))
	}
	WidgetEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != trellis.WidgetSliderChanged || e.Name != "volume" || e.Value != 0.25 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != trellis.WidgetToggled || e.Value != 1 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromSceneWidgets(t *testing.T) {
	world := donburi.NewWorld()
	scene := trellis.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	toggle := trellis.NewToggle(scene, trellis.ToggleConfig{
		Shape:     trellis.Fill,
		ClickArea: trellis.Fill,
	})
	toggle.Name = "mute"
	scene.Root().AddChild(toggle)
	scene.Resize(100, 40)

	var got []trellis.WidgetEvent
	WidgetEventType.Subscribe(world, func(w donburi.World, e trellis.WidgetEvent) {
		got = append(got, e)
	})

	scene.Dispatch(trellis.Event{Type: trellis.EventButtonUp, X: 50, Y: 20})
	WidgetEventType.ProcessEvents(world)

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Type != trellis.WidgetToggled || got[0].Name != "mute" || got[0].Widget != toggle {
		t.Errorf("event: %+v", got[0])
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	WidgetEventType.Subscribe(world, func(w donburi.World, e trellis.WidgetEvent) { count1++ })
	WidgetEventType.Subscribe(world, func(w donburi.World, e trellis.WidgetEvent) { count2++ })

	sink.EmitEvent(trellis.WidgetEvent{Type: trellis.WidgetDragStart})
	WidgetEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d count2=%d, want 1 each", count1, count2)
	}
}
