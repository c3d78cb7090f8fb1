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

package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nabbar/embsh/logging"
)

// config is embshd's on-disk configuration, loaded from --config when
// given. Every field has a sane zero-value default, applied per
// transport by defaultConfig.
type config struct {
	Telnet struct {
		Enabled     bool   `yaml:"enabled"`
		Addr        string `yaml:"addr"`
		MaxSessions int    `yaml:"max_sessions"`
		Banner      string `yaml:"banner"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
	} `yaml:"telnet"`

	Console struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"console"`

	Serial struct {
		Enabled bool   `yaml:"enabled"`
		Device  string `yaml:"device"`
		Baud    int    `yaml:"baud"`
	} `yaml:"serial"`

	Prompt   string `yaml:"prompt"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() *config {
	c := &config{}
	c.Telnet.Enabled = true
	c.Telnet.Addr = ":2323"
	c.Telnet.MaxSessions = 8
	c.Serial.Device = "/dev/ttyS0"
	c.Serial.Baud = 115200
	c.Prompt = "embsh> "
	c.LogLevel = "info"
	return c
}

func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}
