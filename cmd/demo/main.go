// Demo host for the message bus: four sensor producers feeding one
// pinned consumer, with periodic JSON statistics snapshots on stdout.
//
// Orchestration follows the same phased setup as a production host:
// construct the bus, register subscribers, pin and start the consumer,
// then let producers run. Ctrl-C drains and prints a final report.
package main

import (
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"mccc/affinity"
	"mccc/bus"
	"mccc/debuglog"
	"mccc/envelope"
	"mccc/payload"
	"mccc/telemetry"
)

// SensorReading is the demo's only traffic: a synthetic temperature
// sample. Plain, pointer-free data, as every bus payload must be.
type SensorReading struct {
	SensorID  uint32
	CentiDegC int32
}

func (SensorReading) Discriminant() uint8 { return 0 }

var _ = payload.MustFit[SensorReading]()

const (
	queueDepth  = 4096
	producers   = 4
	consumerCPU = 0
)

func main() {
	// PHASE 0: bus construction and subscriber registration.
	b := bus.New[SensorReading](queueDepth)
	b.SetErrorCallback(func(kind bus.BusError, msgID uint64) {
		if kind == bus.OverflowDetected {
			debuglog.DropMessage("OVERFLOW", "message id space exhausted")
		}
	})

	var hottest atomic.Int32
	h := bus.Subscribe[SensorReading](b, func(hdr envelope.Header, r SensorReading) {
		for {
			prev := hottest.Load()
			if r.CentiDegC <= prev || hottest.CompareAndSwap(prev, r.CentiDegC) {
				return
			}
		}
	})
	if !h.Valid() {
		debuglog.DropMessage("SUBSCRIBE", "registration failed")
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// PHASE 1: pinned consumer. The goroutine locks to an OS thread so
	// the affinity mask it sets survives scheduling.
	var halt atomic.Bool
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		runtime.LockOSThread()
		if err := affinity.Pin(consumerCPU); err != nil {
			debuglog.DropError("AFFINITY", err)
		}
		for !halt.Load() {
			if b.ProcessBatch() == 0 {
				runtime.Gosched()
			}
		}
		for b.ProcessBatch() > 0 {
		}
	}()

	// PHASE 2: producers.
	for p := 0; p < producers; p++ {
		go func(sender uint32) {
			var sample int32
			for !halt.Load() {
				sample = (sample + 7) % 12000
				reading := SensorReading{SensorID: sender, CentiDegC: sample}
				bus.Publish(b, reading, sender)
			}
		}(uint32(p + 1))
	}

	// PHASE 3: periodic telemetry until interrupted.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			printReport(b)
		case <-stop:
			halt.Store(true)
			<-consumerDone
			printReport(b)
			debuglog.DropMessage("SHUTDOWN", "clean drain complete")
			return
		}
	}
}

func printReport(b *bus.Bus[SensorReading]) {
	report := telemetry.BuildReport(b.GetStatistics(), b.QueueDepth(), queueDepth)
	out, err := telemetry.MarshalJSON(report)
	if err != nil {
		debuglog.DropError("TELEMETRY", err)
		return
	}
	os.Stdout.Write(append(out, '\n'))
}
