// vmcmarionette listens for VMC motion data and logs every message it
// receives.  It can optionally persist the session to a recording file and
// expose its socket metrics over HTTP.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pykeio/vmc"
	"github.com/pykeio/vmc/recording"
	"github.com/pykeio/vmc/socket"
)

func run(arguments []string) error {
	flags := pflag.NewFlagSet("vmcmarionette", pflag.ContinueOnError)
	flags.String("bind", socket.DefaultMarionetteBind, "address to listen on for VMC packets")
	flags.String("record", "", "file to record the session to")
	flags.String("metrics", "", "address to serve prometheus metrics on")
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

	registry := prometheus.NewRegistry()
	s, err := socket.Marionette(&socket.Options{
		Logger:     logger,
		Registerer: registry,
		Bind:       v.GetString("bind"),
	})
	if err != nil {
		return err
	}
	defer s.Close()

	var recorder *recording.Recorder
	if file := v.GetString("record"); len(file) > 0 {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()

		recorder, err = recording.NewRecorder(f, nil)
		if err != nil {
			return err
		}

		logger.Info("recording session", zap.String("file", file), zap.Stringer("session", recorder.Session()))
	}

	if addr := v.GetString("metrics"); len(addr) > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = s.ReceiveMessages(ctx, func(messages []vmc.Message, source net.Addr) {
		for _, m := range messages {
			logger.Info("message", zap.Stringer("source", source), zap.Any("content", m))
			if recorder != nil {
				if err := recorder.Record(m); err != nil {
					logger.Error("unable to record message", zap.Error(err))
				}
			}
		}
	})
	if err == context.Canceled {
		return nil
	}
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
