/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package revoke

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestWrapper_RevokeCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockService(ctrl)
	svc.EXPECT().RevokeCredentials(gomock.Any(), "AB123456C").Times(1)

	w := Wrap(svc, noop.NewTracerProvider().Tracer(""))

	require.NoError(t, w.RevokeCredentials(context.Background(), "AB123456C"))
}
