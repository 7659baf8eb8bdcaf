package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/benz9527/xlist/xlog"
)

type xlistBanner struct{}

func (b xlistBanner) JSON() string {
	return `{"app":"xlist","scenarios":["singly","doubly","circular"]}`
}

func (b xlistBanner) PlainText() string {
	return `
__  __ _     ___ ____ _____
\ \/ /| |   |_ _/ ___|_   _|
 \  / | |    | |\___ \ | |
 /  \ | |___ | | ___) || |
/_/\_\|_____|___|____/ |_|
`
}

func run(args []string, out io.Writer, logger xlog.XLogger) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	app := fx.New(appOptions(cfg, out, logger))
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err = app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

func main() {
	syncer, err := xlog.NewXLogBufferSyncer(os.Stderr, 32<<10, time.Second)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(syncer),
		xlog.WithXLoggerEncoder(xlog.PlainText),
	)
	logger.Banner(xlistBanner{})
	if err = run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.ErrorStack(err, "xlist failed")
	}
	if serr := syncer.Stop(); serr != nil {
		_, _ = fmt.Fprintln(os.Stderr, serr)
	}
	if err != nil {
		os.Exit(1)
	}
}
