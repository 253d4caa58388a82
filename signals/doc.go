// Package signals bridges asynchronous signal delivery to a pollable
// descriptor and manipulates signal disposition.
//
// A Listener owns one descriptor that becomes readable when a signal it
// observes fires. Integrate it with any readiness loop using Fd, Events and
// Timeout, then call Wait until it reports nothing pending:
//
//	l, err := signals.Listen([]int{int(unix.SIGHUP), int(unix.SIGTERM)})
//	if err != nil {
//		return err
//	}
//	defer l.Close()
//	// poll l.Fd() for reading, then:
//	for {
//		signo, ok, err := l.Wait()
//		if err != nil || !ok {
//			break
//		}
//		handle(signo)
//	}
//
// Repeated deliveries of a signal before Wait collapse into one. Run wraps
// the loop above with poll(2) for programs without their own event loop.
//
// On Linux the descriptor is an eventfd fed from os/signal; on Darwin and
// the BSDs it is a kqueue with EVFILT_SIGNAL filters.
//
// Ignore, Default, Block, Unblock and Raise act on process or thread state
// and have no instance to hold.
package signals
