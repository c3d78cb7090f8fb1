package serial_test

import (
	"testing"
	"time"

	goserial "github.com/daedaluz/goserial"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
	"github.com/nabbar/embsh/transport/serial"
)

func TestNew_RejectsUnsupportedBaud(t *testing.T) {
	_, err := serial.New(serial.Config{Device: "/dev/null", Baud: 1234})
	if err != serial.ErrUnsupportedBaud {
		t.Fatalf("expected ErrUnsupportedBaud, got %v", err)
	}
}

func TestNew_DrivesSessionOverPTY(t *testing.T) {
	master, slave, err := goserial.OpenPTY(nil, nil)
	if err != nil {
		t.Skipf("PTY unavailable in this environment: %v", err)
	}
	defer master.Close()

	reg := shell.New(nil)
	_ = reg.Add("", command.New("ping", "", nil))

	s, err := serial.New(serial.Config{Baud: 9600, Registry: reg, Prompt: "> ", Override: slave})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	go s.Run()
	defer s.Stop()

	if _, err := master.Write([]byte("ping\r")); err != nil {
		t.Fatalf("write to master: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
}
