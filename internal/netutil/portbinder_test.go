package netutil

import (
	"errors"
	"testing"
)

func TestBindTCPReservesPort(t *testing.T) {
	pb := NewPortBinder()

	// Port 0 lets the OS pick a free port
	listener, err := pb.BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error: %v", err)
	}
	defer listener.Close()

	port, err := pb.GetListenerPort(listener)
	if err != nil {
		t.Fatalf("GetListenerPort() error: %v", err)
	}
	if port == 0 {
		t.Error("expected OS-assigned port, got 0")
	}

	// Second bind on the held port must report the conflict as our error type
	_, err = pb.BindTCP("127.0.0.1", port)
	if err == nil {
		t.Fatal("expected error binding an already-bound port")
	}

	var addrInUse *AddressInUseError
	if !errors.As(err, &addrInUse) {
		t.Errorf("expected AddressInUseError, got %T: %v", err, err)
	} else if addrInUse.Port != port {
		t.Errorf("expected conflict on port %d, got %d", port, addrInUse.Port)
	}
}
