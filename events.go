package trellis

// WidgetEventType identifies a kind of widget event.
type WidgetEventType uint8

const (
	WidgetDragStart     WidgetEventType = iota // a slider handle was grabbed
	WidgetDragEnd                              // a slider handle was released
	WidgetSliderChanged                        // a slider's value changed
	WidgetToggled                              // a toggle's state flipped
)

// EventSink is the interface for optional ECS integration.
// When set on a Scene, widget events are forwarded to it.
type EventSink interface {
	EmitEvent(event WidgetEvent)
}

// WidgetEvent carries widget state changes for the ECS bridge.
type WidgetEvent struct {
	Type   WidgetEventType
	Widget Container
	Name   string
	// Value is the slider value as float64, or 1/0 for a toggle's new state.
	Value float64
	// Norm is the slider value's fraction of its range, or the toggle's
	// travel progress when the event fired.
	Norm float64
}

func (s *Scene) emitWidgetEvent(t WidgetEventType, c Container, value, norm float64) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(WidgetEvent{
		Type:   t,
		Widget: c,
		Name:   c.node().Name,
		Value:  value,
		Norm:   norm,
	})
}
