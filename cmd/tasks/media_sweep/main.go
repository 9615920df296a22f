// Package main 提供孤儿媒体回收任务的独立进程入口。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	mediasweep "github.com/bionicotaku/lingo-services-tube/internal/tasks/media_sweep"
	"github.com/go-kratos/kratos/v2/log"
)

type mediaSweepApp struct {
	Runner *mediasweep.Runner
	Logger log.Logger
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	app, cleanup, err := wireMediaSweepTask(ctx, configloader.Params{ConfPath: *confFlag})
	if err != nil {
		panic(err)
	}
	defer cleanup()

	helper := log.NewHelper(app.Logger)
	if app.Runner == nil {
		helper.Warn("media sweep runner disabled")
		return
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("media sweep stopped unexpectedly: %v", err)
		os.Exit(1)
	}
}
