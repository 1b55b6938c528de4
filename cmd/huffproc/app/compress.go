package app

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const compressedSuffix = ".huff"

type compressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	outPath        string
}

func newCompressCommandeer(rootCommandeer *RootCommandeer) *compressCommandeer {
	commandeer := &compressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:     "compress [-o outfile] infile",
		Aliases: []string{"c"},
		Short:   "Compress a file (default output: infile" + compressedSuffix + ")",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			outPath := commandeer.outPath
			if outPath == "" {
				outPath = inPath + compressedSuffix
			}

			processor, err := rootCommandeer.createProcessor()
			if err != nil {
				return err
			}

			err = transcodeFile(inPath, outPath, func(out io.Writer, in *os.File) error {
				return processor.CompressStream(out, in)
			})
			if err != nil {
				return errors.Wrapf(err, "Failed to compress %s", inPath)
			}

			rootCommandeer.loggerInstance.InfoWith("Compressed",
				"input", inPath,
				"output", outPath,
				"header", processor.HeaderMode().String(),
				"inputSize", fileSize(inPath),
				"outputSize", fileSize(outPath))

			return nil
		},
	}

	cmd.Flags().StringVarP(&commandeer.outPath, "output", "o", "", "Output file path")

	commandeer.cmd = cmd

	return commandeer
}
