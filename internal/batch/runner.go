// Package batch converts whole CSV files of coordinates to scene space
// using a producer/consumer pipeline: one reader goroutine, a pool of
// conversion workers and a single writer.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/golang/glog"

	"github.com/mapgrid/geoscene/internal/io"
	"github.com/mapgrid/geoscene/pkg/scene"
	"github.com/mapgrid/geoscene/tools"
)

type Runner struct {
	fileFinder tools.FileFinder
	converter  *scene.Converter
}

func NewRunner(fileFinder tools.FileFinder, converter *scene.Converter) *Runner {
	return &Runner{
		fileFinder: fileFinder,
		converter:  converter,
	}
}

// Run converts every input file resolved from the options, writing one
// output file per input into the output folder.
func (r *Runner) Run(opts *Options) error {
	glog.Infoln("Preparing list of files to process...")

	inputFiles := r.fileFinder.GetFilesToProcess(opts.Input, opts.FolderProcessing, opts.Recursive)
	if len(inputFiles) == 0 {
		return fmt.Errorf("no input files found in %s", opts.Input)
	}

	for i, filePath := range inputFiles {
		glog.Infof("csv_file path %d [%s]", i+1, filePath)
	}

	if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
		return err
	}

	for i, filePath := range inputFiles {
		glog.Infoln("Processing file " + fmt.Sprint(i+1) + "/" + fmt.Sprint(len(inputFiles)))

		if err := r.processFile(filePath, opts); err != nil {
			return fmt.Errorf("processing %s: %w", filePath, err)
		}

		glog.Infoln("> done processing", filepath.Base(filePath))
	}

	return nil
}

func (r *Runner) processFile(filePath string, opts *Options) error {
	outPath := filepath.Join(opts.Output, outputName(filePath))

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	numConsumers := opts.WorkerCount
	if numConsumers <= 0 {
		numConsumers = runtime.NumCPU()
	}

	// work channel with a buffer 5 times greater than the number of consumers
	workChannel := make(chan *io.WorkUnit, numConsumers*5)
	resultChannel := make(chan *io.Result, numConsumers*5)

	// buffered so producer and consumers never block on error submission
	errorChannel := make(chan error, numConsumers+1)

	var waitGroup sync.WaitGroup
	var writerGroup sync.WaitGroup

	waitGroup.Add(1)
	producer := io.NewCSVProducer(filePath)
	go producer.Produce(workChannel, errorChannel, &waitGroup)

	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer(r.converter, opts.Geographic)
		go consumer.Consume(workChannel, resultChannel, errorChannel, &waitGroup)
	}

	writer := io.NewCSVWriter(outFile)
	writerGroup.Add(1)
	go writer.Write(resultChannel, &writerGroup)

	// wait for producer and consumers, then release the writer
	waitGroup.Wait()
	close(resultChannel)
	writerGroup.Wait()

	close(errorChannel)

	withErrors := false
	for err := range errorChannel {
		glog.Infoln(err)
		withErrors = true
	}
	if withErrors {
		return errors.New("errors raised during conversion. Check log output for details")
	}

	return writer.Err()
}

func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + "_local.csv"
}
