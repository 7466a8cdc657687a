package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"student-roster/internal/logger"
)

const component = "ShutdownManager"

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name string
	part Shutdownable
}

// Manager stops registered parts in reverse registration order, once,
// on the first signal or explicit Shutdown call.
type Manager struct {
	components []entry
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	reason     string
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	return &Manager{
		logger:  log,
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}
}

func (m *Manager) Register(name string, part Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, entry{name: name, part: part})
}

// Listen shuts down on SIGINT or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.ShutdownWithReason("signal " + sig.String())
		case <-m.done:
		}
		signal.Stop(sigChan)
	}()
}

func (m *Manager) Shutdown() {
	m.ShutdownWithReason("requested")
}

// ShutdownWithReason is Shutdown recording why it happened. Only the first
// call has any effect.
func (m *Manager) ShutdownWithReason(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		m.reason = reason
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
		"reason":     reason,
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.part.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug(component, "component stopped", map[string]interface{}{
				"part": c.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"part": c.name,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

// Done is closed once shutdown has started.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Reason reports what started the shutdown, or "" if it has not started.
func (m *Manager) Reason() string {
	select {
	case <-m.done:
		return m.reason
	default:
		return ""
	}
}
