// This file is part of Gopherduino.
//
// Gopherduino is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherduino is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherduino.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/disassembly"
	"github.com/gopherduino/gopherduino/hardware"
	"github.com/gopherduino/gopherduino/hardware/cpu"
	"github.com/gopherduino/gopherduino/hardware/memory"
	"github.com/gopherduino/gopherduino/hardware/peripherals/eeprom"
	"github.com/gopherduino/gopherduino/hardware/peripherals/ports"
	"github.com/gopherduino/gopherduino/imageloader"
	"github.com/gopherduino/gopherduino/logger"
	"github.com/gopherduino/gopherduino/modalflag"
	"github.com/gopherduino/gopherduino/statsview"
	"github.com/gopherduino/gopherduino/stimulus"
	"github.com/gopherduino/gopherduino/terminal"
	"github.com/gopherduino/gopherduino/version"
	"github.com/gopherduino/gopherduino/wavwriter"
)

// exit values returned to the operating system.
const (
	exitOK            = 0
	exitError         = 1
	exitUnimplemented = 10
	exitLoad          = 20
)

// the load pattern marks errors that occur before the emulation starts.
const loadError = "load: %v"

// streams used by launch(). the terminal package requires an *os.File for
// input so that it can be put into raw mode. if input is not a file then raw
// mode is not possible.
type streams struct {
	input  io.Reader
	output io.Writer
	errors io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], streams{
		input:  os.Stdin,
		output: os.Stdout,
		errors: os.Stderr,
	})
	stop()
	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string, std streams) int {
	md := &modalflag.Modes{Output: std.output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM")

	if v, r, _ := version.Version(); v != "" {
		md.AdditionalHelp(fmt.Sprintf("%s %s (%s)", version.ApplicationName, v, r))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(std.errors, "* error: %v\n", err)
		return exitError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, std)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(std.errors, "* error in %s mode: %v\n", md, err)

		switch {
		case curated.Is(err, cpu.UnimplementedInstruction):
			return exitUnimplemented
		case curated.Is(err, loadError):
			return exitLoad
		}
		return exitError
	}

	return exitOK
}

// loadImage loads the named file into a new board
func loadImage(filename string, serialOut io.Writer) (*hardware.Board, error) {
	img, err := imageloader.Load(filename, memory.ProgramSize*2)
	if err != nil {
		return nil, curated.Errorf(loadError, err)
	}

	board := hardware.NewBoard(serialOut)
	if err := board.LoadProgram(img.Data); err != nil {
		return nil, curated.Errorf(loadError, err)
	}

	logger.Logf(logger.Allow, "gopherduino", "%s (%s)", img.ShortName(), img.Format)

	return board, nil
}

func run(ctx context.Context, md *modalflag.Modes, std streams) (rerr error) {
	md.NewMode()

	eepromFile := md.AddString("eeprom", "", "load EEPROM image from file")
	saveEEPROM := md.AddBool("save-eeprom", false, "save EEPROM to file on exit if it has changed")
	script := md.AddString("lua", "", "lua stimulus script")
	wav := md.AddString("wav", "", "record pin to wav file")
	wavPin := md.AddInt("wavpin", 5, "pin to record with the -wav flag")
	trace := md.AddBool("trace", false, "trace every instruction to stderr")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	memvizFile := md.AddString("memviz", "", "write final CPU state to file as graphviz dot")
	prof := md.AddBool("profile", false, "write cpu profile to the current directory")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	raw := md.AddBool("raw", false, "put terminal into raw mode for the serial console")
	maxCycles := md.AddUint64("maxcycles", 0, "stop after the number of cycles (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(std.errors, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *saveEEPROM && *eepromFile == "" {
		return fmt.Errorf("-save-eeprom requires an -eeprom file")
	}

	if *wav != "" && (*wavPin < 0 || *wavPin >= ports.NumPins) {
		return fmt.Errorf("-wavpin must be between 0 and %d", ports.NumPins-1)
	}

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	var st *statsview.Stats
	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		st = statsview.NewStats()
		statsview.Launch(std.errors, st)
	}

	board, err := loadImage(md.GetArg(0), std.output)
	if err != nil {
		return err
	}

	if *eepromFile != "" {
		data, err := os.ReadFile(*eepromFile)
		if err != nil {
			if !os.IsNotExist(err) || !*saveEEPROM {
				return curated.Errorf(loadError, err)
			}
			logger.Logf(logger.Allow, "gopherduino", "%s will be created", *eepromFile)
		} else if err := board.LoadEEPROM(data); err != nil {
			return curated.Errorf(loadError, err)
		}
	}

	if *trace {
		board.CPU.Trace = std.errors
	}

	if *wav != "" {
		ww := wavwriter.New(*wav, board, *wavPin)
		board.AttachPinCallback(*wavPin, ww.OutPin)
		defer func() {
			if err := ww.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	var stm *stimulus.Stimulus
	if *script != "" {
		stm = stimulus.NewStimulus(board, board.USART)
		defer stm.Close()
		if err := stm.LoadFile(*script); err != nil {
			return curated.Errorf(loadError, err)
		}
	}

	if *raw {
		f, ok := std.input.(*os.File)
		if !ok {
			return fmt.Errorf("-raw requires input from a terminal")
		}
		term, err := terminal.RawMode(f)
		if err != nil {
			return err
		}
		defer term.Restore()
	}

	if std.input != nil {
		board.USART.AttachInput(std.input)
	}

	// the loaded program is not run until the board is reset
	board.Reset()

	continueCheck := func() (bool, error) {
		if st != nil {
			st.Update(board.Cycles())
		}
		if stm != nil {
			if err := stm.Poll(); err != nil {
				return false, err
			}
		}
		if *maxCycles > 0 && board.Cycles() >= *maxCycles {
			logger.Logf(logger.Allow, "gopherduino", "stopped after %d cycles", board.Cycles())
			return false, nil
		}
		return true, nil
	}

	// the emulation runs in its own goroutine so that an interrupt signal can
	// be noted while the emulation is busy. the board itself is only ever
	// touched by the emulation goroutine
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	var state cpu.State
	g.Go(func() error {
		defer close(done)
		var err error
		state, err = board.Run(gctx, continueCheck)
		return err
	})

	g.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
			logger.Log(logger.Allow, "gopherduino", "interrupted")
		}
		return nil
	})

	err = g.Wait()

	logger.Logf(logger.Allow, "gopherduino", "%v after %d cycles", state, board.Cycles())

	if *saveEEPROM && board.EEPROM.Changed() {
		if err := writeEEPROM(*eepromFile, board.EEPROM); err != nil && rerr == nil {
			rerr = err
		}
	}

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, board); err != nil && rerr == nil {
			rerr = err
		}
	}

	if err != nil {
		return err
	}

	return rerr
}

func writeEEPROM(filename string, ee *eeprom.EEPROM) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := ee.Save(f); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "gopherduino", "eeprom saved to %s", filepath.Base(filename))

	return nil
}

func writeMemviz(filename string, board *hardware.Board) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, board.Snapshot())

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytes", false, "include raw instruction words in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		board, err := loadImage(md.GetArg(0), nil)
		if err != nil {
			return err
		}

		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
		}

		dsm := disassembly.FromProgram(board.Program)
		if err := dsm.Write(md.Output, attr); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
