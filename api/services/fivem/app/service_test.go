package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway"
	mock_gateway "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway/mock"
)

func Test_RelayEvent_ForwardsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	fwd := mock_gateway.NewMockForwarder(ctrl)
	svc := NewService(fwd)

	want := gw.EventCommand{Code: "ABC", Event: json.RawMessage(`"x"`), Amount: json.RawMessage(`5`)}
	fwd.EXPECT().SendEvent(gomock.Any(), want).Return(nil).Times(1)

	err := svc.RelayEvent(context.Background(), "ABC", EventBody{Event: json.RawMessage(`"x"`), Amount: json.RawMessage(`5`)})
	assert.NoError(t, err)
}

func Test_RelayEvent_PassesOpaqueValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	fwd := mock_gateway.NewMockForwarder(ctrl)
	svc := NewService(fwd)

	body := EventBody{
		Event:    json.RawMessage(`{"kind":"stream","tier":3}`),
		Distance: json.RawMessage(`null`),
		Duration: json.RawMessage(`"12:30"`),
	}
	var got gw.EventCommand
	fwd.EXPECT().SendEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd gw.EventCommand) error {
		got = cmd
		return nil
	})

	assert.NoError(t, svc.RelayEvent(context.Background(), "ABC", body))
	assert.JSONEq(t, `{"kind":"stream","tier":3}`, string(got.Event))
	assert.Nil(t, got.Amount)
	assert.Equal(t, "null", string(got.Distance))
	assert.Equal(t, `"12:30"`, string(got.Duration))
}

func Test_RelayEvent_MissingCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	fwd := mock_gateway.NewMockForwarder(ctrl)
	svc := NewService(fwd)

	for _, code := range []string{"", "   "} {
		err := svc.RelayEvent(context.Background(), code, EventBody{})
		assert.ErrorIs(t, err, ErrBadRequest)
	}
}

func Test_RelayEvent_ForwardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fwd := mock_gateway.NewMockForwarder(ctrl)
	svc := NewService(fwd)

	fwd.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(errors.Join(gw.ErrDownstream, errors.New("connection refused")))

	err := svc.RelayEvent(context.Background(), "ABC", EventBody{})
	assert.ErrorIs(t, err, ErrForward)
}
