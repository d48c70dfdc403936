package paystack

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalSendEvent(t *testing.T) {
	t.Run("happy: permitted type and action pairs", func(t *testing.T) {
		pairs := []struct {
			typ    TerminalEvent
			action TerminalAction
		}{
			{TerminalEventInvoice, TerminalActionProcess},
			{TerminalEventInvoice, TerminalActionView},
			{TerminalEventTransaction, TerminalActionProcess},
			{TerminalEventTransaction, TerminalActionPrint},
		}
		for _, p := range pairs {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"id":"evt_1"}}`))
			})

			resp, err := client.Terminals.SendEvent(context.Background(), "term_1", &SendTerminalEventRequest{
				Type:   p.typ,
				Action: p.action,
			})
			require.NoError(t, err, "%s/%s", p.typ, p.action)
			require.NotNil(t, resp.Data)
			assert.Equal(t, "evt_1", resp.Data.EventID)
		}
	})

	t.Run("bad: action not permitted for the event type", func(t *testing.T) {
		pairs := []struct {
			typ    TerminalEvent
			action TerminalAction
		}{
			{TerminalEventInvoice, TerminalActionPrint},
			{TerminalEventTransaction, TerminalActionView},
		}
		for _, p := range pairs {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

			_, err := client.Terminals.SendEvent(context.Background(), "term_1", &SendTerminalEventRequest{
				Type:   p.typ,
				Action: p.action,
			})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "%s/%s", p.typ, p.action)
			assert.Equal(t, "action", verr.Field)
		}
	})

	t.Run("bad: unknown event type", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Terminals.SendEvent(context.Background(), "term_1", &SendTerminalEventRequest{
			Type:   TerminalEvent("receipt"),
			Action: TerminalActionProcess,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "type", verr.Field)
	})

	t.Run("bad: missing terminal id", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Terminals.SendEvent(context.Background(), "", &SendTerminalEventRequest{
			Type:   TerminalEventInvoice,
			Action: TerminalActionProcess,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
