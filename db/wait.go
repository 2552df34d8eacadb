package db

import (
	"fmt"
	"log/slog"
	"net"
	"time"
)

var dialTimeout = 2 * time.Second

// Wait polls a TCP endpoint until it accepts a connection or the timeout
// elapses. Used to hold schema initialization until a database sidecar is
// reachable.
func Wait(addr string, timeout time.Duration, interval time.Duration) error {
	slog.Info("Waiting for " + addr + " to accept connections")

	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("tcp", addr, dialTimeout)
		if err == nil {
			conn.Close()
			slog.Info(addr + " is reachable")
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s waiting for %s: %w", timeout, addr, err)
		}

		slog.Debug(addr + " not reachable yet: " + err.Error())
		time.Sleep(interval)
	}
}
