package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/keybd/bonding"
	"github.com/Alia5/keybd/internal/log"
	"github.com/Alia5/keybd/keyboard"
	"github.com/Alia5/keybd/platform"
)

// Press simulates one key request, optionally repeated.
type Press struct {
	Keys       []string      `arg:"" optional:"" help:"Keys to press, in order (see 'keybd keys')"`
	Platform   string        `help:"Target platform: auto, linux, darwin or windows" default:"auto" env:"KEYBD_PLATFORM"`
	Ctrl       bool          `help:"Hold left Ctrl"`
	Alt        bool          `help:"Hold left Alt"`
	Shift      bool          `help:"Hold left Shift"`
	RCtrl      bool          `name:"rctrl" help:"Hold right Ctrl"`
	RShift     bool          `name:"rshift" help:"Hold right Shift"`
	AltGr      bool          `name:"altgr" help:"Hold AltGr"`
	Settle     time.Duration `help:"Wait after creating the uinput device before the first launch (linux)" default:"2s" env:"KEYBD_SETTLE"`
	KeyDelay   time.Duration `help:"Delay between a key's down and up events (darwin); 0 disables it" default:"10ms" env:"KEYBD_KEY_DELAY"`
	DeviceName string        `help:"Name of the virtual uinput device (linux)" default:"keybd_event" env:"KEYBD_DEVICE_NAME"`
	Repeat     int           `help:"Number of launches" default:"1" env:"KEYBD_REPEAT"`
	Interval   time.Duration `help:"Pause between repeated launches" default:"0s" env:"KEYBD_INTERVAL"`
}

var newInstance = bonding.New

// State builds the keyboard request described by the flags and arguments.
func (p *Press) State() (keyboard.State, error) {
	var st keyboard.State
	st.HasCtrl(p.Ctrl)
	st.HasAlt(p.Alt)
	st.HasShift(p.Shift)
	st.HasRCtrl(p.RCtrl)
	st.HasRShift(p.RShift)
	st.HasAltGr(p.AltGr)
	for _, name := range p.Keys {
		k, err := keyboard.ParseKey(name)
		if err != nil {
			return keyboard.State{}, err
		}
		st.AddKey(k)
	}
	return st, nil
}

// Run is called by Kong when the press command is executed.
func (p *Press) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return p.Execute(ctx, logger, rawLogger)
}

// Execute creates the keyboard for the selected platform and launches the request.
func (p *Press) Execute(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	target, err := platform.ParsePlatform(p.Platform)
	if err != nil {
		return err
	}
	st, err := p.State()
	if err != nil {
		return err
	}
	if len(st.Keys) == 0 && !st.HasModifiers() {
		return errors.New("nothing to press; pass at least one key or modifier")
	}
	if p.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", p.Repeat)
	}

	kb, err := newInstance(target, &platform.Options{
		Logger:     logger,
		RawLogger:  rawLogger,
		DeviceName: p.DeviceName,
		KeyDelay:   &p.KeyDelay,
	})
	if err != nil {
		var perr *platform.PermissionError
		if errors.As(err, &perr) {
			logger.Error("cannot open uinput device", "path", perr.Path, "fix", perr.Remediation())
		}
		return fmt.Errorf("failed to create keyboard for %s: %w", target, err)
	}
	defer func() {
		if err := kb.Close(); err != nil {
			logger.Warn("failed to release keyboard device", "error", err)
		}
	}()

	if target == platform.Linux && p.Settle > 0 {
		logger.Debug("waiting for uinput device to settle", "duration", p.Settle)
		if err := sleepCtx(ctx, p.Settle); err != nil {
			return nil
		}
	}

	kb.SetKeys(st.Keys...)
	kb.HasCtrl(st.Ctrl)
	kb.HasAlt(st.Alt)
	kb.HasShift(st.Shift)
	kb.HasRCtrl(st.RCtrl)
	kb.HasRShift(st.RShift)
	kb.HasAltGr(st.AltGr)

	for i := 0; i < p.Repeat; i++ {
		if i > 0 && p.Interval > 0 {
			if err := sleepCtx(ctx, p.Interval); err != nil {
				return nil
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		logger.Info("Launching key sequence", "platform", target, "keys", st.Keys, "launch", i+1)
		kb.Launch()
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
