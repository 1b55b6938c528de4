package app

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type decompressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	outPath        string
}

func newDecompressCommandeer(rootCommandeer *RootCommandeer) *decompressCommandeer {
	commandeer := &decompressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:     "decompress [-o outfile] infile",
		Aliases: []string{"d"},
		Short:   "Decompress a file (default output: infile without " + compressedSuffix + ")",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			outPath := commandeer.outPath
			if outPath == "" {
				outPath = defaultDecompressedPath(inPath)
			}

			processor, err := rootCommandeer.createProcessor()
			if err != nil {
				return err
			}

			err = transcodeFile(inPath, outPath, func(out io.Writer, in *os.File) error {
				return processor.DecompressStream(out, in)
			})
			if err != nil {
				return errors.Wrapf(err, "Failed to decompress %s", inPath)
			}

			rootCommandeer.loggerInstance.InfoWith("Decompressed",
				"input", inPath,
				"output", outPath,
				"inputSize", fileSize(inPath),
				"outputSize", fileSize(outPath))

			return nil
		},
	}

	cmd.Flags().StringVarP(&commandeer.outPath, "output", "o", "", "Output file path")

	commandeer.cmd = cmd

	return commandeer
}

func defaultDecompressedPath(inPath string) string {
	if trimmed := strings.TrimSuffix(inPath, compressedSuffix); trimmed != inPath && trimmed != "" {
		return trimmed
	}
	return inPath + ".out"
}
