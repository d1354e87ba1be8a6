package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	activateCommand = "show"
	readTimeout     = 2 * time.Second
)

// InstanceGuard holds the single-instance lock and listens for activation
// requests from later launches.
type InstanceGuard struct {
	listener net.Listener
	address  string

	mu         sync.Mutex
	onActivate func()
	done       chan struct{}
}

// AcquireSingleInstance binds a deterministic localhost port derived from
// appName. Only the holder runs a timer.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := addressFor(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	guard := &InstanceGuard{
		listener: listener,
		address:  address,
		done:     make(chan struct{}),
	}
	go guard.serve()
	return guard, nil
}

// ActivateExisting asks the running instance to bring its window forward.
func ActivateExisting(appName string, timeout time.Duration) error {
	address := addressFor(appName)
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("dial instance %s: %w", address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	if _, err := fmt.Fprintln(conn, activateCommand); err != nil {
		return fmt.Errorf("send activate: %w", err)
	}
	return nil
}

// OnActivate sets the handler run when another launch calls
// ActivateExisting. It runs on the guard's goroutine.
func (guard *InstanceGuard) OnActivate(handler func()) {
	if guard == nil {
		return
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	guard.onActivate = handler
}

// Release frees the single instance lock and stops listening.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	<-guard.done
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer close(guard.done)
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		guard.handle(conn)
	}
}

func (guard *InstanceGuard) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || strings.TrimSpace(line) != activateCommand {
		return
	}

	guard.mu.Lock()
	handler := guard.onActivate
	guard.mu.Unlock()
	if handler != nil {
		handler()
	}
}

func addressFor(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
