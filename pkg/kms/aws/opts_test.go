/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aws //nolint:testpackage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestOpts(t *testing.T) {
	t.Run("options: defaults", func(t *testing.T) {
		options := newOpts()

		require.Nil(t, options.awsClient)
		require.Empty(t, options.endpoint)
	})

	t.Run("options: set manually", func(t *testing.T) {
		options := newOpts()
		client := NewMockawsClient(gomock.NewController(t))

		WithEndpoint("http://localhost:4566")(options)
		WithAWSClient(client)(options)

		require.Equal(t, "http://localhost:4566", options.endpoint)
		require.Equal(t, client, options.awsClient)
	})
}
