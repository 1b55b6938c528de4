package app

import (
	"io"
	"os"

	huffman "github.com/chronos-tachyon/hufftree"

	"github.com/nuclio/logger"
	"github.com/nuclio/zap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrSameFile is returned when the output path names the input file.
var ErrSameFile = errors.New("output file is the input file")

// RootCommandeer holds the state shared by all huffproc commands.
type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	headerMode     huffman.HeaderMode
	logWriter      io.Writer
}

// NewRootCommandeer builds the huffproc command tree.
func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{
		headerMode: huffman.TreeHeader,
		logWriter:  os.Stderr,
	}

	cmd := &cobra.Command{
		Use:           "huffproc [command]",
		Short:         "Huffman compressor with a self-describing tree header",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().Var(&commandeer.headerMode, "header", "Header format written by compress and expected by decompress - \"tree\" or \"counts\"")

	cmd.AddCommand(
		newCompressCommandeer(commandeer).cmd,
		newDecompressCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	var err error

	rc.loggerInstance, err = rc.createLogger()
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("huffproc",
		loggerLevel,
		nucliozap.NewRedactor(rc.logWriter))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

func (rc *RootCommandeer) createProcessor() (*huffman.Processor, error) {
	if err := rc.initialize(); err != nil {
		return nil, errors.Wrap(err, "Failed to initialize root")
	}

	processor, err := huffman.NewProcessor(rc.loggerInstance, rc.headerMode)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create processor")
	}

	return processor, nil
}

// transcodeFile opens inPath, creates outPath and runs fn over them.  The
// output file is removed if fn or closing it fails.
func transcodeFile(inPath string, outPath string, fn func(out io.Writer, in *os.File) error) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "Failed to open input file")
	}
	defer in.Close() // nolint: errcheck

	if sameFile(in, outPath) {
		return errors.Wrapf(ErrSameFile, "%s", outPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "Failed to create output file")
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "Failed to close output file")
		}
		if err != nil {
			os.Remove(outPath) // nolint: errcheck
		}
	}()

	return fn(out, in)
}

// sameFile returns true iff outPath already names the file open as in.
func sameFile(in *os.File, outPath string) bool {
	inInfo, err := in.Stat()
	if err != nil {
		return false
	}
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return false
	}
	return os.SameFile(inInfo, outInfo)
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}
