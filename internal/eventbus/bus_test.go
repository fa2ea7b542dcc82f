package eventbus

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rorical/RoriRecipe/internal/models"
)

func TestEventBus(t *testing.T) {
	Convey("Given an event bus", t, func() {
		eb := NewEventBusWithSize(1)

		Convey("When the UI sends a diet selection", func() {
			So(eb.SendToCore(SelectDietEvent{Diet: models.Vegan}), ShouldBeNil)

			Convey("Then core receives it", func() {
				ev := <-eb.UIToCore()
				So(ev, ShouldResemble, SelectDietEvent{Diet: models.Vegan})
			})
		})

		Convey("When core pushes a snapshot", func() {
			snap := models.Snapshot{State: models.Pending, Seq: 1}
			So(eb.SendToUI(StateUpdateEvent{Snapshot: snap}), ShouldBeNil)

			Convey("Then the UI receives it", func() {
				ev := <-eb.CoreToUI()
				So(ev.(StateUpdateEvent).Snapshot, ShouldResemble, snap)
			})
		})

		Convey("When the core channel is full", func() {
			var reported []EventBusError
			eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })
			So(eb.SendToCore(SubmitRecipeEvent{}), ShouldBeNil)
			err := eb.SendToCore(SubmitRecipeEvent{})

			Convey("Then the send fails and is reported", func() {
				So(errors.Is(err, ErrCoreFull), ShouldBeTrue)
				So(reported, ShouldHaveLength, 1)
				So(reported[0].Operation, ShouldEqual, "SendToCore")
			})
		})

		Convey("When the bus is closed", func() {
			eb.Close()
			eb.Close()

			Convey("Then sends fail instead of panicking", func() {
				So(errors.Is(eb.SendToCore(SubmitRecipeEvent{}), ErrClosed), ShouldBeTrue)
				So(errors.Is(eb.SendToUI(StateUpdateEvent{}), ErrClosed), ShouldBeTrue)
			})
		})
	})
}

func TestCircuitBreaker(t *testing.T) {
	Convey("Given a circuit breaker allowing two failures", t, func() {
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		cb := NewCircuitBreaker(2, time.Minute)
		cb.now = func() time.Time { return now }

		Convey("When one failure is recorded, it stays closed", func() {
			cb.RecordFailure()
			So(cb.IsOpen(), ShouldBeFalse)
			So(cb.State(), ShouldEqual, CircuitClosed)
		})

		Convey("When two failures are recorded", func() {
			cb.RecordFailure()
			cb.RecordFailure()

			Convey("Then it opens", func() {
				So(cb.IsOpen(), ShouldBeTrue)
			})

			Convey("Then it half-opens after the reset timeout", func() {
				now = now.Add(2 * time.Minute)
				So(cb.IsOpen(), ShouldBeFalse)
				So(cb.State(), ShouldEqual, CircuitHalfOpen)

				Convey("And a success closes it", func() {
					cb.RecordSuccess()
					So(cb.State(), ShouldEqual, CircuitClosed)
				})

				Convey("And a failure re-opens it", func() {
					cb.RecordFailure()
					So(cb.State(), ShouldEqual, CircuitOpen)
				})
			})
		})
	})
}
