package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"pieshell/internal/logging"
	"pieshell/internal/shell"
	"pieshell/internal/transport"
)

const version = "0.2.0"

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pieshell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Interactive command shell that runs on the local terminal or\n")
		fmt.Fprintf(os.Stderr, "headless over a serial link.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	serialFlag := pflag.Bool("serial", false, "read and write over the serial port instead of the local terminal")
	stdioFlag := pflag.Bool("stdio", false, "force the local terminal even on the embedded target")
	portFlag := pflag.String("port", transport.DefaultSerialPort, "serial device to open")
	baudFlag := pflag.Int("baud", transport.DefaultBaudRate, "serial baud rate")
	debugFlag := pflag.Bool("debug", false, "log diagnostics at debug level")
	versionFlag := pflag.BoolP("version", "V", false, "print version information")
	helpFlag := pflag.BoolP("help", "h", false, "show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("pieshell version %s\n", version)
		return
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	// The embedded target talks over the UART by default; everywhere
	// else the inherited terminal streams are used. Flags override.
	useSerial := runtime.GOOS == "linux" && runtime.GOARCH == "arm64"
	if *serialFlag {
		useSerial = true
	}
	if *stdioFlag {
		useSerial = false
	}

	var (
		duplex transport.Duplex
		err    error
	)
	if useSerial {
		duplex, err = transport.OpenSerial(*portFlag, *baudFlag)
	} else {
		duplex = transport.NewStdio()
	}
	if err != nil {
		logger.Error("opening transport", "err", err)
		os.Exit(1)
	}

	s := shell.New(duplex, shell.NewSession(), logger)
	err = s.Run()
	duplex.Close()
	if err != nil {
		if !errors.Is(err, shell.ErrSessionEnded) {
			logger.Error("shell stopped", "err", err)
		}
		os.Exit(1)
	}
}
