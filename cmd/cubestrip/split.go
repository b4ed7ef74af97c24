package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/setanarut/cubestrip"
)

var splitDir string

var splitCmd = &cobra.Command{
	Use:   "split <strip.png>",
	Short: "Cut a cubemap strip back into its six face files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if err := cubestrip.SplitFile(args[0], splitDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d faces to %s\n", cubestrip.FaceCount, splitDir)
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVarP(&splitDir, "dir", "d", ".", "directory to write the face files into")
	rootCmd.AddCommand(splitCmd)
}
