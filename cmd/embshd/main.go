/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Command embshd is a demonstration server wiring the registry and all
// three transports together: a telnet listener, the local console, and
// a serial line, each switched on by its own "enabled" setting (only
// telnet is enabled by default).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/transport/console"
	"github.com/nabbar/embsh/transport/serial"
	"github.com/nabbar/embsh/transport/telnet"
)

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:   "embshd",
		Short: "embedded debug shell demonstration server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
	}
	root.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML configuration file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("embshd: %v", err))
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.level())

	sh := shell.New(nil)
	if err := registerBuiltins(sh); err != nil {
		return err
	}

	var (
		telnetSrv *telnet.Server
		consoleTr *console.Console
		serialTr  *serial.Serial
	)

	if cfg.Telnet.Enabled {
		var creds *telnet.Credentials
		if cfg.Telnet.Username != "" {
			creds = &telnet.Credentials{Username: cfg.Telnet.Username, Password: cfg.Telnet.Password}
		}

		telnetSrv = telnet.New(telnet.Config{
			Addr:        cfg.Telnet.Addr,
			MaxSessions: cfg.Telnet.MaxSessions,
			Banner:      cfg.Telnet.Banner,
			Prompt:      cfg.Prompt,
			Registry:    sh,
			Credentials: creds,
			Log:         log,
		})
		if err := telnetSrv.Start(); err != nil {
			return err
		}
		log.Info("telnet transport listening on %s", telnetSrv.Addr())
	}

	if cfg.Console.Enabled {
		c, err := console.New(console.Config{
			In:         os.Stdin,
			Out:        os.Stdout,
			Registry:   sh,
			Prompt:     cfg.Prompt,
			Log:        log,
			Background: true,
		})
		if err != nil {
			return err
		}
		consoleTr = c
		if err := consoleTr.Start(); err != nil {
			return err
		}
	}

	if cfg.Serial.Enabled {
		s, err := serial.New(serial.Config{
			Device:   cfg.Serial.Device,
			Baud:     cfg.Serial.Baud,
			Registry: sh,
			Prompt:   cfg.Prompt,
			Log:      log,
		})
		if err != nil {
			return err
		}
		serialTr = s
		go serialTr.Run()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")

	if telnetSrv != nil {
		_ = telnetSrv.Stop()
	}
	if consoleTr != nil {
		_ = consoleTr.Stop()
	}
	if serialTr != nil {
		_ = serialTr.Stop()
	}

	return nil
}
