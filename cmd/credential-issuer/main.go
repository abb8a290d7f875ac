/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main starts the credential issuer.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/cmd/credential-issuer/startcmd"
)

var logger = log.New("credential-issuer")

// Set during build.
var (
	Version   string
	BuildTime string
)

func main() {
	rootCmd := &cobra.Command{
		Use: "credential-issuer",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithBuildTime(BuildTime),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run credential-issuer", log.WithError(err))
	}
}
