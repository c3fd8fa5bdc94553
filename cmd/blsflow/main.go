// Command blsflow builds a streaming job from the command line and
// submits it to a flow gateway.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ivanmladek/cloud-kepler/connector/hadoop"
	"github.com/ivanmladek/cloud-kepler/flowlog"
	"github.com/ivanmladek/cloud-kepler/mapreduce"
	"github.com/ivanmladek/cloud-kepler/tap"
)

var (
	flagGateway     = flag.String("gateway", "", "streaming gateway URL")
	flagInput       = flag.String("input", "", "input path on the storage layer")
	flagOutput      = flag.String("output", "", "output path on the storage layer")
	flagInterpreter = flag.String("interpreter", "python3", "program executing the scripts")
	flagArchive     = flag.String("archive", "", "optional archive reference, scripts anchor after its last '#'")
	flagMapper      = flag.String("mapper", "", "mapper script path")
	flagMapperArgs  = flag.String("mapper-args", "", "verbatim mapper arguments")
	flagReducer     = flag.String("reducer", "", "reducer script path, empty for a map-only job")
	flagReducerArgs = flag.String("reducer-args", "", "verbatim reducer arguments")
	flagName        = flag.String("name", "", "job name")
	flagWait        = flag.Bool("wait", false, "wait for the job to finish")
)

func run(l *zap.Logger) error {
	ctx := context.Background()

	conn := hadoop.NewConnector(*flagGateway, hadoop.WithLogger(l))
	mr := mapreduce.New(conn, mapreduce.WithLogger(l))

	opts := []mapreduce.JobOption{
		mapreduce.WithMapper(*flagMapper, *flagMapperArgs),
	}
	if *flagArchive != "" {
		opts = append(opts, mapreduce.WithArchive(*flagArchive))
	}
	if *flagReducer != "" {
		opts = append(opts, mapreduce.WithReducer(*flagReducer, *flagReducerArgs))
	}
	if *flagName != "" {
		opts = append(opts, mapreduce.WithJobName(*flagName))
	}

	h, err := mr.BuildAndSubmit(ctx,
		tap.NewHfs(*flagInput), tap.NewHfs(*flagOutput), *flagInterpreter, opts...)
	if err != nil {
		return err
	}

	l.Info("job accepted", zap.String("job_id", string(h.ID())))

	if *flagWait {
		return h.Wait(ctx)
	}
	return nil
}

func main() {
	flag.Parse()

	if *flagGateway == "" || *flagMapper == "" {
		fmt.Fprintf(os.Stderr, "usage: blsflow -gateway URL -input PATH -output PATH -mapper SCRIPT [flags]\n")
		os.Exit(1)
	}

	l := flowlog.Must()
	defer func() { _ = l.Sync() }()

	if err := run(l); err != nil {
		fmt.Fprintf(os.Stderr, "blsflow: %v\n", err)
		os.Exit(1)
	}
}
