package device

import (
	"fmt"
	"time"

	"github.com/pion/emucam/internal/logging"
)

// controlMessage is the single-value signal carried over the worker
// control endpoint.
type controlMessage int

// stopMessage is the only legal control message; anything else read
// from the endpoint is a protocol violation.
const stopMessage controlMessage = 1

type waitResult int

const (
	// waitTimeout: the configured timeout elapsed with no event.
	waitTimeout waitResult = iota
	// waitError: the wait itself failed, or an illegal control message
	// arrived.
	waitError
	// waitExit: a stop message arrived; the loop must terminate.
	waitExit
	// waitReady: the readiness source fired.
	waitReady
)

var workerLog = logging.NewLogger("emucam/worker")

// worker runs the capture loop on its own goroutine and owns the
// signaling endpoint pair used to interrupt its blocking wait. The
// endpoints are created fresh on every start and are either both open
// (loop running or starting) or both nil (stopped), never mixed.
type worker struct {
	control chan controlMessage // stop() writes, the loop reads
	done    chan struct{}       // closed by the loop on exit

	ready   <-chan struct{}
	timeout time.Duration
	produce func() bool
}

func newWorker(produce func() bool) *worker {
	return &worker{produce: produce}
}

// opened reports whether the signaling endpoints are live.
func (w *worker) opened() bool {
	return w.control != nil
}

// start creates the endpoint pair and spawns the loop. ready and
// timeout configure the loop's multiplexed wait; both may be zero.
func (w *worker) start(ready <-chan struct{}, timeout time.Duration) error {
	if w.opened() {
		return fmt.Errorf("%w: worker is already started", ErrInvalidState)
	}

	w.ready = ready
	w.timeout = timeout
	w.control = make(chan controlMessage, 1)
	w.done = make(chan struct{})
	workerLog.Trace("worker thread endpoints created")

	go w.loop(w.control, w.done)
	return nil
}

// stop delivers exactly one stop message, joins the loop, and only then
// closes and invalidates the endpoints. The ordering guarantees the
// loop never observes closed endpoints mid-wait and the caller never
// returns while the loop is still executing. If the message cannot be
// delivered the loop is presumed still running and the caller may
// retry.
func (w *worker) stop() error {
	if !w.opened() {
		return fmt.Errorf("%w: worker control endpoints are not open", ErrInvalidState)
	}

	select {
	case w.control <- stopMessage:
	default:
		workerLog.Error("unable to deliver stop message: control endpoint refused the write")
		return fmt.Errorf("%w: control endpoint refused stop message", ErrIO)
	}

	<-w.done

	close(w.control)
	w.control = nil
	w.done = nil
	workerLog.Trace("worker thread has been stopped")
	return nil
}

func (w *worker) loop(control <-chan controlMessage, done chan struct{}) {
	defer close(done)

	for {
		switch w.awaitEvent(control) {
		case waitExit, waitError:
			return
		case waitReady, waitTimeout:
			// A timed out wait still gives the hook a chance to run;
			// the source decides what a timeout means for production.
			if !w.produce() {
				workerLog.Debug("production hook requested loop exit")
				return
			}
		}
	}
}

// awaitEvent blocks until the control endpoint, the readiness source or
// the timeout fires, whichever comes first. With no readiness source
// and no timeout it blocks on the control endpoint alone.
func (w *worker) awaitEvent(control <-chan controlMessage) waitResult {
	var timeout <-chan time.Time
	if w.timeout > 0 {
		t := time.NewTimer(w.timeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case msg, ok := <-control:
		if !ok {
			workerLog.Error("control endpoint closed while the loop was waiting")
			return waitError
		}
		if msg != stopMessage {
			workerLog.Errorf("unknown worker control message %d", msg)
			return waitError
		}
		workerLog.Trace("stop message received")
		return waitExit
	case <-w.ready:
		return waitReady
	case <-timeout:
		return waitTimeout
	}
}
