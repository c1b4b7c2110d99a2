// vmcperformer transmits VMC motion data to a marionette.  Given a
// recording it replays the captured session in real time; otherwise it
// sends a simple idle animation.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pykeio/vmc"
	"github.com/pykeio/vmc/clock"
	"github.com/pykeio/vmc/recording"
	"github.com/pykeio/vmc/socket"
)

const frameInterval = time.Second / 60

func run(arguments []string) error {
	flags := pflag.NewFlagSet("vmcperformer", pflag.ContinueOnError)
	flags.String("send", socket.DefaultPerformerSend, "address of the marionette")
	flags.String("bind", "", "local address to bind (defaults to an ephemeral port)")
	flags.String("replay", "", "recording file to replay instead of the idle animation")
	flags.Bool("debug", false, "enable debug logging")
	if err := flags.Parse(arguments); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("vmc")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	if v.GetBool("debug") {
		config = zap.NewDevelopmentConfig()
	}
	logger, err := config.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := socket.Performer(&socket.Options{
		Logger: logger,
		Bind:   v.GetString("bind"),
		Send:   v.GetString("send"),
	})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if file := v.GetString("replay"); len(file) > 0 {
		return replay(ctx, logger, s, file)
	}
	return idle(ctx, s)
}

// replay streams a recorded session, pacing frames by their recorded
// offsets.
func replay(ctx context.Context, logger *zap.Logger, s *socket.Socket, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	replayer, err := recording.NewReplayer(f)
	if err != nil {
		return err
	}
	logger.Info("replaying session", zap.String("session", replayer.Session()))

	c := clock.System()
	epoch := clock.NewEpoch(c)
	for {
		elapsed, m, err := replayer.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		offset := time.Duration(float64(elapsed) * float64(time.Second))
		if wait := offset - epoch.Elapsed(); wait > 0 {
			timer := c.NewTimer(wait)
			select {
			case <-timer.C():
			case <-ctx.Done():
				timer.Stop()
				return nil
			}
		}

		if err := s.SendMessage(m); err != nil {
			return err
		}
	}
}

// idle sends a blink cycle, availability, and frame timing at a fixed
// rate.
func idle(ctx context.Context, s *socket.Socket) error {
	c := clock.System()
	epoch := clock.NewEpoch(c)

	ticker := c.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
		}

		elapsed := epoch.ElapsedSeconds()
		blink := float32(math.Abs(math.Sin(float64(elapsed) * math.Pi / 2)))

		err := s.SendMessages(
			vmc.NewState(vmc.ModelLoaded),
			vmc.NewBlendShape(vmc.BlendShapeBlink, blink),
			vmc.ApplyBlendShapes{},
			vmc.NewTime(elapsed),
		)
		if err != nil {
			return err
		}
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
