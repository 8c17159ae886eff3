package transport

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/stream"
	"github.com/clustermesh/quorumcall/io/registry"
	"github.com/clustermesh/quorumcall/mocks"
)

func TestListSiblingsDelegatesToMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []dto.Sibling{
		{ProcessID: "w1", InstanceID: "i1", Addr: "h1:3000"},
		{ProcessID: "w2", InstanceID: "i2", Addr: "h2:3000"},
	}

	members := mocks.NewMockMembership(ctrl)
	members.EXPECT().ListSiblings(gomock.Any()).Return(want, nil)

	tr := New(members, nil, stream.NewInbox())

	got, err := tr.ListSiblings(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSendToFailsOnUnknownWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := mocks.NewMockMembership(ctrl)
	members.EXPECT().
		Lookup(gomock.Any(), "w-gone").
		Return(dto.Sibling{}, errors.Wrapf(registry.ErrNotFound, "process %s", "w-gone"))

	tr := New(members, nil, stream.NewInbox())

	err := tr.SendTo(context.Background(), "w-gone", &dto.Packet{Topic: "metrics-get"})
	require.Error(t, err)
	require.True(t, errors.Is(err, registry.ErrNotFound))
}

func TestSubscribeRoutesInboundPackets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inbox := stream.NewInbox()
	tr := New(mocks.NewMockMembership(ctrl), nil, inbox)

	var got *dto.Packet
	sub := tr.Subscribe(func(p *dto.Packet) { got = p })

	inbox.Dispatch(&dto.Packet{CorrelationID: "corr-1"})
	require.NotNil(t, got)
	require.Equal(t, "corr-1", got.CorrelationID)

	tr.Unsubscribe(sub)
	got = nil
	inbox.Dispatch(&dto.Packet{CorrelationID: "corr-2"})
	require.Nil(t, got)
}
