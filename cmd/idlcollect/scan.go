/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idlcollect/pkg/pathlist"
)

type scanParams struct {
	ext      string
	excludes []string
}

func newScanCmd() *cobra.Command {
	params := scanParams{}
	cmd := &cobra.Command{
		Use:   "scan <dir> <path_list_file>",
		Short: "collect IDL document paths under dir into a path list file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return scan(args[0], args[1], params)
		},
	}
	cmd.Flags().StringVar(&params.ext, "ext", ".idl", "document extension to collect")
	cmd.Flags().StringSliceVar(&params.excludes, "exclude", nil, "document basenames to skip")
	return cmd
}

func scan(dir, pathListFile string, params scanParams) error {
	paths, err := pathlist.Scan(dir, params.ext, params.excludes)
	if err != nil {
		return err
	}
	if err := pathlist.Write(pathListFile, paths); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("scanned %s: %d documents", dir, len(paths)))
	}
	return nil
}
