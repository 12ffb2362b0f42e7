// This file is part of Tickinput.
//
// Tickinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tickinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tickinput.  If not, see <https://www.gnu.org/licenses/>.

// Tickinput is a demonstration of the control package. It loads a controls
// configuration and prints the actions of the configured controllers as they
// are triggered by keyboard, touch and gamepad input.
//
// Modes:
//
//	RUN       run the demonstration (the default mode)
//	VALIDATE  check one or more configuration files
//	DUMP      write a graphviz representation of the loaded context
//
// Settings can be given in the environment with the TICKINPUT_CONFIG,
// TICKINPUT_PREFS, TICKINPUT_TICK and TICKINPUT_BACKEND variables. Command
// line flags take precedence.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/caarlos0/env/v11"
	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/control/devices"
	"github.com/tickinput/tickinput/control/gamepad"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/modalflag"
	"github.com/tickinput/tickinput/notifications"
	"github.com/tickinput/tickinput/paths"
	"github.com/tickinput/tickinput/prefs"
	"github.com/tickinput/tickinput/sdlinput"
	"github.com/tickinput/tickinput/statsview"
	"github.com/tickinput/tickinput/terminput"
	"github.com/tickinput/tickinput/termkeys"
	"github.com/tickinput/tickinput/userinput"
	"github.com/tickinput/tickinput/version"
)

// settings taken from the process environment. each field can be overridden
// by the equivalent command line flag
type settings struct {
	Config  string        `env:"CONFIG" envDefault:"controls.yaml"`
	Prefs   string        `env:"PREFS"`
	Tick    time.Duration `env:"TICK" envDefault:"16ms"`
	Backend string        `env:"BACKEND" envDefault:"terminal"`
}

func loadSettings() (settings, error) {
	var s settings
	err := env.ParseWithOptions(&s, env.Options{Prefix: "TICKINPUT_"})
	return s, err
}

// the controller type used by the demo. every action writes a line of output
// when it is triggered and when it is released
const demoController = "demo"

func demoSetup(output func(string)) control.ControllerSetup {
	return func(ctrl *control.Controller) error {
		for _, name := range ctrl.Actions() {
			err := ctrl.SetActionFunctions(name,
				func(intensity control.Intensity, _ time.Duration) {
					output(fmt.Sprintf("%s: %s %s", ctrl.Name(), name, intensity))
				},
				func(_ time.Duration) {
					output(fmt.Sprintf("%s: %s released", ctrl.Name(), name))
				})
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// noticeLog is an implementation of notifications.Notify that logs every
// notice
type noticeLog struct {
	env *environment.Environment
}

func (n noticeLog) Notify(notice notifications.Notice) error {
	logger.Log(n.env, "notice", notice)
	return nil
}

// newContext creates a context with every interpreter type and the demo
// controller type registered
func newContext(env *environment.Environment, gamepads gamepad.Devices, output func(string)) (*control.Context, error) {
	ctx := control.NewContext(env)
	if err := devices.Register(ctx, gamepads); err != nil {
		return nil, err
	}
	if err := ctx.RegisterControllerType(demoController, demoSetup(output)); err != nil {
		return nil, err
	}
	return ctx, nil
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VALIDATE", "DUMP")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, s)
	case "VALIDATE":
		err = validate(md, os.Stdout)
	case "DUMP":
		err = dump(md, s)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// prefs disk for the main environment. a disk is created in the resource
// path unless the path argument is not empty
func openPrefs(path string) (*prefs.Disk, error) {
	if path == "" {
		var err error
		path, err = paths.ResourcePath("", "prefs")
		if err != nil {
			return nil, err
		}
	}

	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return dsk, nil
}

func openBackend(name string) (userinput.Backend, gamepad.Devices, error) {
	switch strings.ToLower(name) {
	case "sdl":
		b, err := sdlinput.NewBackend(version.ApplicationName, 640, 480)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case "terminal":
		b, err := terminput.NewBackend()
		return b, nil, err
	case "keys":
		b, err := termkeys.NewBackend("/dev/tty")
		return b, nil, err
	}
	return nil, nil, fmt.Errorf("unknown backend (%s)", name)
}

// display of output lines for backends that own the terminal
type drawer interface {
	Draw(lines []string)
}

func run(md *modalflag.Modes, s settings) error {
	md.NewMode()
	cfgPath := md.AddString("config", s.Config, "path to controls configuration (json, toml or yaml)")
	prefsPath := md.AddString("prefs", s.Prefs, "path to preferences file")
	prefsCmd := md.AddString("setprefs", "", "preferences for this session only (key::value; key::value)")
	backend := md.AddString("backend", s.Backend, "input backend: sdl, terminal or keys")
	tick := md.AddDuration("tick", s.Tick, "duration of one tick")
	watch := md.AddBool("watch", false, "reload configuration when the file changes")
	echo := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")
	if !statsview.Available() {
		md.AdditionalHelp("statsview is not available in this build")
	}

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	if *prefsCmd != "" {
		prefs.PushCommandLineStack(*prefsCmd)
	}

	if *echo {
		logger.SetEcho(os.Stderr, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	doc, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	dsk, err := openPrefs(*prefsPath)
	if err != nil {
		return err
	}

	bck, gamepads, err := openBackend(*backend)
	if err != nil {
		return err
	}
	defer bck.Close()

	// output is drawn to the terminal by backends that own the terminal and
	// printed otherwise
	var lines []string
	output := func(l string) {
		if _, ok := bck.(drawer); ok {
			lines = append(lines, l)
			if len(lines) > 20 {
				lines = lines[len(lines)-20:]
			}
			return
		}
		fmt.Printf("%s\r\n", l)
	}

	env := environment.NewEnvironment(environment.MainContext, dsk)
	env.Notify = noticeLog{env: env}

	ctx, err := newContext(env, gamepads, output)
	if err != nil {
		return err
	}

	// a configuration document that loads with errors is still usable
	if err := ctx.Load(doc); err != nil {
		output(fmt.Sprintf("* %v", err))
	}

	// screen size for the touch interpreter
	resize := func() {
		if sz, ok := bck.(interface{ Size() (int, int) }); ok {
			w, h := sz.Size()
			_, _ = ctx.HandleEvent(userinput.EventResize{Width: w, Height: h})
		}
	}
	resize()

	reloads := make(chan *config.Document, 1)
	if *watch {
		w, err := config.NewWatcher(*cfgPath, func(doc *config.Document) {
			select {
			case reloads <- doc:
			default:
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()

		go func() {
			for err := range w.Errors() {
				logger.Log(env, "config", err)
			}
		}()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	var router userinput.Router
	last := time.Now()

	for {
		select {
		case <-intChan:
			return ctx.Clear()

		case doc := <-reloads:
			if err := ctx.Reload(doc); err != nil {
				output(fmt.Sprintf("* %v", err))
			}
			resize()
			_ = env.Notice(notifications.NotifyConfigReloaded)

		case now := <-ticker.C:
			quit, err := userinput.Service(bck, &router, ctx)
			if err != nil {
				return err
			}
			if quit {
				return ctx.Clear()
			}

			ctx.Control(now.Sub(last))
			last = now

			if d, ok := bck.(drawer); ok {
				d.Draw(lines)
			}
		}
	}
}

// validate every configuration file named on the command line. problems are
// written to output. returns an error if any file has a problem
func validate(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return fmt.Errorf("no configuration files specified")
	}

	var failed bool
	for _, f := range files {
		if err := validateFile(f); err != nil {
			fmt.Fprintf(output, "%s: %v\n", f, err)
			failed = true
			continue
		}
		fmt.Fprintf(output, "%s: ok\n", f)
	}

	if failed {
		return errors.New("configuration problems found")
	}
	return nil
}

// a configuration file is valid if it loads and every entry in it can be
// added to a context
func validateFile(path string) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	env := environment.NewEnvironment("validate", nil)
	env.Quiet = true

	ctx, err := newContext(env, nil, func(string) {})
	if err != nil {
		return err
	}
	defer ctx.Clear()

	return ctx.Load(doc)
}

// dump the context created from a configuration file as a graphviz file
func dump(md *modalflag.Modes, s settings) error {
	md.NewMode()
	cfgPath := md.AddString("config", s.Config, "path to controls configuration")
	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	doc, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	env := environment.NewEnvironment("dump", nil)
	ctx, err := newContext(env, nil, func(string) {})
	if err != nil {
		return err
	}
	if err := ctx.Load(doc); err != nil {
		fmt.Printf("* %v\n", err)
	}

	fn, err := paths.ResourcePath("dumps", paths.UniqueFilename("context", "", "dot"))
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, ctx)
	fmt.Printf("context written to %s\n", fn)

	return nil
}
