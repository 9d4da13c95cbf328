/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idlcollect/pkg/pathlist"
	"github.com/voedger/idlcollect/pkg/registry"
	"github.com/voedger/idlcollect/pkg/widl"
)

func newCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect <path_list_file> <output_file>",
		Short: "build the interface registry from the listed IDL documents and dump it to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return collect(args[0], args[1])
		},
	}
}

func collect(pathListFile, outputFile string) error {
	paths, err := pathlist.Read(pathListFile)
	if err != nil {
		return err
	}
	parser := widl.New()
	reg, err := registry.Build(parser.ParseFile, paths)
	if err != nil {
		return err
	}
	if err := registry.ExportFile(reg, outputFile); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("collected %d interfaces into %s", len(reg), outputFile))
	}
	return nil
}
