package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
	"github.com/tm-ahad/sigma0/pkg/engine"
	"github.com/tm-ahad/sigma0/pkg/engine/uci"
)

var (
	moveDBPath = flag.String("movedb", "", "Path to the persistent move database (disabled if empty)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: sigma0 [options]

sigma0 is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts []engine.Option
	if *moveDBPath != "" {
		db, err := engine.NewMoveDatabase(*moveDBPath)
		if err != nil {
			logw.Exitf(ctx, "Failed to open move database: %v", err)
		}
		defer db.Close()
		opts = append(opts, engine.WithMoveDatabase(db))
	}

	e := engine.New(ctx, "sigma0", "tm-ahad", opts...)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
